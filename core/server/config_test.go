package server_test

import (
	"testing"
	"time"

	"secure-app-server/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_WithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   server.Config
		want server.Config
	}{
		{
			name: "Empty",
			in:   server.Config{},
			want: server.Config{
				ReadTimeout:      10 * time.Second,
				IdleTimeout:      75 * time.Second,
				ShutdownTimeout:  5 * time.Second,
				HandshakeTimeout: 10 * time.Second,
				MaxConnections:   10000,
			},
		},
		{
			name: "KeepsExplicitValues",
			in: server.Config{
				ReadTimeout:      time.Second,
				IdleTimeout:      2 * time.Second,
				ShutdownTimeout:  3 * time.Second,
				HandshakeTimeout: 4 * time.Second,
				MaxConnections:   5,
				Docs:             true,
			},
			want: server.Config{
				ReadTimeout:      time.Second,
				IdleTimeout:      2 * time.Second,
				ShutdownTimeout:  3 * time.Second,
				HandshakeTimeout: 4 * time.Second,
				MaxConnections:   5,
				Docs:             true,
			},
		},
		{
			name: "NegativeValues",
			in:   server.Config{ReadTimeout: -time.Second, MaxConnections: -1},
			want: server.Config{
				ReadTimeout:      10 * time.Second,
				IdleTimeout:      75 * time.Second,
				ShutdownTimeout:  5 * time.Second,
				HandshakeTimeout: 10 * time.Second,
				MaxConnections:   10000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.WithDefaults())
		})
	}
}
