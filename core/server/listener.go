package server

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
)

// tlsListener wraps accepted connections in TLS. The handshake runs lazily on
// the first read or write, inside the goroutine serving that connection, so
// a slow or broken client never stalls Accept.
type tlsListener struct {
	net.Listener
	config  *tls.Config
	timeout time.Duration
	logger  *zap.Logger

	closeOnce sync.Once
	closeErr  error
}

// NewListener terminates TLS on every connection accepted by inner.
func NewListener(inner net.Listener, config *tls.Config, handshakeTimeout time.Duration, logger *zap.Logger) net.Listener {
	return &tlsListener{
		Listener: inner,
		config:   config,
		timeout:  handshakeTimeout,
		logger:   logger,
	}
}

func (l *tlsListener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}
	return &tlsConn{
		Conn:    tls.Server(conn, l.config),
		timeout: l.timeout,
		logger:  l.logger,
	}, nil
}

// Close closes the inner listener once; repeated calls report the first result.
func (l *tlsListener) Close() error {
	l.closeOnce.Do(func() {
		l.closeErr = l.Listener.Close()
	})
	return l.closeErr
}

// tlsConn embeds *tls.Conn so fasthttp sees a TLS connection; Handshake is
// overridden to apply the timeout and logging.
type tlsConn struct {
	*tls.Conn
	timeout time.Duration
	logger  *zap.Logger

	once sync.Once
	err  error
}

// Handshake is called by fasthttp before it reads the first request.
func (c *tlsConn) Handshake() error {
	return c.handshake()
}

func (c *tlsConn) Read(b []byte) (int, error) {
	if err := c.handshake(); err != nil {
		return 0, err
	}
	return c.Conn.Read(b)
}

func (c *tlsConn) Write(b []byte) (int, error) {
	if err := c.handshake(); err != nil {
		return 0, err
	}
	return c.Conn.Write(b)
}

func (c *tlsConn) handshake() error {
	c.once.Do(func() {
		ctx := context.Background()
		if c.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}

		err := c.Conn.HandshakeContext(ctx)
		if err == nil {
			return
		}
		c.err = err

		fields := []zap.Field{zap.String("remote", c.RemoteAddr().String()), zap.Error(err)}
		if errors.Is(err, io.EOF) {
			c.logger.Debug("Client closed connection during TLS handshake", fields...)
			return
		}
		c.logger.Warn("TLS handshake failed", fields...)
	})
	return c.err
}
