//go:build !integration

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		logPretty string
	}{
		{
			name: "initializes with default log level",
		},
		{
			name:     "initializes with debug log level",
			logLevel: "debug",
		},
		{
			name:      "initializes with pretty output enabled",
			logLevel:  "info",
			logPretty: "true",
		},
		{
			name:      "initializes with pretty output disabled",
			logLevel:  "warn",
			logPretty: "false",
		},
		{
			name:     "initializes with error log level",
			logLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.logLevel != "" {
				t.Setenv("LOG_LEVEL", tt.logLevel)
			}
			if tt.logPretty != "" {
				t.Setenv("LOG_PRETTY", tt.logPretty)
			}

			assert.NotPanics(t, func() {
				InitializeLogger()
			})
		})
	}
}
