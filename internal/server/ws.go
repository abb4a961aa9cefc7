package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/admpub/log"
	"github.com/go-chi/render"
	"github.com/gorilla/websocket"

	"github.com/admpub/covid-chart/pkg/barchart"
	"github.com/admpub/covid-chart/pkg/chartctl"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

const (
	msgResize = `resize`
	msgClear  = `clear`
	msgSVG    = `svg`
)

var errSessionClosed = errors.New(`session closed`)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type wsMessage struct {
	Type     string  `json:"type"`
	Selector string  `json:"selector,omitempty"`
	SVG      string  `json:"svg,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
}

// session is one browser page. It is the document holding the chart
// container, the container itself (sized by the browser's reports) and the
// source of resize notifications.
type session struct {
	*chartctl.Notifier
	conn     *websocket.Conn
	selector string
	send     chan wsMessage
	done     chan struct{}
	once     sync.Once

	mu     sync.RWMutex
	width  float64
	height float64
}

func newSession(conn *websocket.Conn, selector string) *session {
	return &session{
		Notifier: chartctl.NewNotifier(),
		conn:     conn,
		selector: selector,
		send:     make(chan wsMessage, 16),
		done:     make(chan struct{}),
	}
}

func (s *session) Query(selector string) (barchart.Element, error) {
	if strings.TrimSpace(selector) != s.selector {
		return nil, fmt.Errorf(`%w: %s`, barchart.ErrNoElement, selector)
	}
	return s, nil
}

func (s *session) AppendSVG(svg []byte) error {
	if i := bytes.Index(svg, []byte(`<svg`)); i > 0 {
		svg = svg[i:]
	}
	return s.enqueue(wsMessage{Type: msgSVG, Selector: s.selector, SVG: string(svg)})
}

func (s *session) Clear() error {
	return s.enqueue(wsMessage{Type: msgClear, Selector: s.selector})
}

func (s *session) Bounds() (float64, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height
}

func (s *session) resize(width, height float64) {
	s.mu.Lock()
	s.width = width
	s.height = height
	s.mu.Unlock()
}

func (s *session) enqueue(m wsMessage) error {
	select {
	case <-s.done:
		return errSessionClosed
	default:
	}
	select {
	case s.send <- m:
		return nil
	case <-s.done:
		return errSessionClosed
	}
}

func (s *session) close() {
	s.once.Do(func() {
		close(s.done)
		s.conn.Close()
	})
}

// writePump is the only writer on the connection.
func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.close()
	}()
	for {
		select {
		case m := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(m); err != nil {
				log.Debugf(`websocket write: %v`, err)
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}

// readPump handles resize reports until the peer goes away. The first report
// draws the chart, later ones notify it.
func (s *session) readPump(onFirstResize func() (*chartctl.Chart, error)) {
	var chart *chartctl.Chart
	defer func() {
		if chart != nil {
			chart.Close()
		}
		s.close()
	}()
	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error { s.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		var m wsMessage
		if err := s.conn.ReadJSON(&m); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warnf(`websocket read: %v`, err)
			}
			return
		}
		if m.Type != msgResize {
			log.Debugf(`ignoring websocket message %q`, m.Type)
			continue
		}
		s.resize(m.Width, m.Height)
		if chart != nil {
			s.Notify()
			continue
		}
		var err error
		chart, err = onFirstResize()
		if err != nil {
			log.Errorf(`failed to draw %s: %v`, s.selector, err)
			return
		}
	}
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.Store.Latest()
	if err != nil {
		render.Render(w, r, ErrUnavailable(err))
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf(`websocket upgrade: %v`, err)
		return
	}
	sess := newSession(conn, s.Config.Selector)
	opts := s.chartOptions()
	opts.Responsive = true
	go sess.writePump()
	sess.readPump(func() (*chartctl.Chart, error) {
		return s.Controller.Draw(snapshot.Data, sess, sess.selector, opts, sess)
	})
}
