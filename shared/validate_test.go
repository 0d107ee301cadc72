package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	cases := []struct {
		description string
		config      Config
		expectedErr string
	}{
		{
			description: "Should accept a minimal config",
			config:      Config{Server: ServerConfig{Port: 3000}},
		},
		{
			description: "Should accept a known log level in any case",
			config:      Config{Server: ServerConfig{Port: 3000}, Logging: LoggingConfig{Level: "DEBUG"}},
		},
		{
			description: "Should reject a missing port",
			config:      Config{},
			expectedErr: "Port",
		},
		{
			description: "Should reject a port out of range",
			config:      Config{Server: ServerConfig{Port: 70000}},
			expectedErr: "Port",
		},
		{
			description: "Should reject an unknown log level",
			config:      Config{Server: ServerConfig{Port: 3000}, Logging: LoggingConfig{Level: "loud"}},
			expectedErr: "log_level",
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			err := ValidateConfig(&c.config)
			if c.expectedErr == "" {
				assert.Nil(t, err)
				return
			}

			if assert.NotNil(t, err) {
				assert.Contains(t, err.Error(), c.expectedErr)
				assert.Contains(t, err.Error(), "invalid config")
			}
		})
	}
}
