package echo

import (
	"errors"
	"time"

	"github.com/fasthttp/websocket"
	"go.uber.org/zap"
)

// TextPrefix is prepended to every echoed text frame.
const TextPrefix = "Echo: "

const controlWriteTimeout = 5 * time.Second

// Frame is one data message of a session.
type Frame struct {
	Type    int
	Payload []byte
}

// Conn is the subset of a WebSocket connection a session drives.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetReadDeadline(t time.Time) error
	SetPingHandler(h func(appData string) error)
	SetCloseHandler(h func(code int, text string) error)
}

// Reply returns the frame answering in. Frames other than text or binary
// get no reply.
func Reply(in Frame) (Frame, bool) {
	switch in.Type {
	case websocket.TextMessage:
		return Frame{Type: websocket.TextMessage, Payload: append([]byte(TextPrefix), in.Payload...)}, true
	case websocket.BinaryMessage:
		return Frame{Type: websocket.BinaryMessage, Payload: in.Payload}, true
	default:
		return Frame{}, false
	}
}

// Session echoes the frames of one connection, in arrival order.
type Session struct {
	conn        Conn
	idleTimeout time.Duration
	logger      *zap.Logger
}

// NewSession prepares a session. A zero idleTimeout disables the read deadline.
func NewSession(conn Conn, idleTimeout time.Duration, logger *zap.Logger) *Session {
	return &Session{
		conn:        conn,
		idleTimeout: idleTimeout,
		logger:      logger,
	}
}

// Run reads frames until the peer closes the session or the connection fails.
// A close handshake initiated by the peer ends the session without error.
func (s *Session) Run() error {
	s.conn.SetPingHandler(s.handlePing)
	s.conn.SetCloseHandler(s.handleClose)

	for {
		if err := s.extendDeadline(); err != nil {
			return err
		}

		messageType, payload, err := s.conn.ReadMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				s.logger.Debug("WebSocket closed by peer",
					zap.Int("code", closeErr.Code),
					zap.String("reason", closeErr.Text))
				return nil
			}
			return err
		}

		reply, ok := Reply(Frame{Type: messageType, Payload: payload})
		if !ok {
			continue
		}
		if err := s.conn.WriteMessage(reply.Type, reply.Payload); err != nil {
			return err
		}
	}
}

func (s *Session) handlePing(appData string) error {
	if err := s.extendDeadline(); err != nil {
		return err
	}
	err := s.conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(controlWriteTimeout))
	if errors.Is(err, websocket.ErrCloseSent) {
		return nil
	}
	return err
}

// handleClose answers with the peer's own code and reason.
func (s *Session) handleClose(code int, text string) error {
	msg := websocket.FormatCloseMessage(code, text)
	err := s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(controlWriteTimeout))
	if errors.Is(err, websocket.ErrCloseSent) {
		return nil
	}
	return err
}

func (s *Session) extendDeadline() error {
	if s.idleTimeout <= 0 {
		return s.conn.SetReadDeadline(time.Time{})
	}
	return s.conn.SetReadDeadline(time.Now().Add(s.idleTimeout))
}
