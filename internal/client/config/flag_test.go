package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all globals", args: []string{"cmd", "-a", "127.0.0.1:9090", "-k", "tok", "-o", "3", "list"},
			expected: &Config{ServerEndpointAddr: "127.0.0.1:9090", AccessToken: "tok", RequestTimeout: 3 * time.Second}},
		{name: "equals form", args: []string{"cmd", "-a=host:1", "sign", "-id", "x"},
			expected: &Config{ServerEndpointAddr: "host:1", RequestTimeout: 10 * time.Second}},
		{name: "bad timeout", args: []string{"cmd", "-o", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{RequestTimeout: 10 * time.Second}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
