package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/admpub/log"

	"github.com/admpub/covid-chart/internal/bootstrap"
	"github.com/admpub/covid-chart/pkg/config"
)

// go run . -c config/config.json
// go run . -o ./dist/

func main() {
	args, err := getCommandLineArgs(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		fmt.Println("usage: covid-chart [-c config.json] [-l :8080] [-o output.svg] [-d]")
		os.Exit(2)
	}
	if args.debug {
		log.SetLevel(`Debug`)
	}
	defer log.Close()

	// Default to ./config/config.json
	if args.configPath == "" {
		args.configPath = "./config/config.json"
	}
	cfg, err := config.LoadConfig(args.configPath)
	if err != nil {
		log.Fatalf(`failed to load config from %s: %v`, args.configPath, err)
	}
	if len(args.listen) > 0 {
		cfg.Listen = args.listen
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(args.output) > 0 {
		err = bootstrap.Output(ctx, &cfg, args.output)
	} else {
		err = bootstrap.Run(ctx, &cfg)
	}
	if err != nil {
		log.Fatal(err)
	}
}

type commandLineArgs struct {
	configPath string
	output     string
	listen     string
	debug      bool
}

func getCommandLineArgs(osArgs []string) (args commandLineArgs, err error) {
	for i := 0; i < len(osArgs); i++ {
		arg := osArgs[i]
		switch arg {
		case "-d", "--debug":
			args.debug = true
			continue
		case "-c", "--config", "-o", "--output", "-l", "--listen":
			if i+1 >= len(osArgs) {
				return args, fmt.Errorf("missing value for %s", arg)
			}
			i++
			value := osArgs[i]
			switch arg {
			case "-c", "--config":
				args.configPath = value
			case "-o", "--output":
				args.output = value
			default:
				args.listen = value
			}
			continue
		}
		return args, fmt.Errorf("unknown argument: %s", arg)
	}
	return args, nil
}
