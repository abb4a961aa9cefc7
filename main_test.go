package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommandLineArgs(t *testing.T) {
	args, err := getCommandLineArgs([]string{`-c`, `conf.json`, `--output`, `out/`, `-l`, `:9090`, `-d`})
	require.NoError(t, err)
	assert.Equal(t, commandLineArgs{configPath: `conf.json`, output: `out/`, listen: `:9090`, debug: true}, args)

	args, err = getCommandLineArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, commandLineArgs{}, args)

	_, err = getCommandLineArgs([]string{`--config`})
	assert.Error(t, err)

	_, err = getCommandLineArgs([]string{`access.log`})
	assert.Error(t, err)
}
