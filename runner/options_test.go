package runner

import (
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
)

func TestOptions_Defaults(t *testing.T) {
	options := &Options{}
	_, err := flags.ParseArgs(options, []string{})
	assert.Nil(t, err)
	assert.Equal(t, "stdio", options.Transport)
	assert.Equal(t, "0.0.0.0:9000", options.Addr)
	assert.Equal(t, 10, options.KeepAliveSeconds)
	assert.False(t, options.Headed)
}

func TestOptions_Flags(t *testing.T) {
	options := &Options{}
	_, err := flags.ParseArgs(options, []string{
		"-t", "sse",
		"-a", "127.0.0.1:8080",
		"--headed",
		"--action-timeout", "5000",
		"--max-content", "1000",
	})
	assert.Nil(t, err)
	assert.Equal(t, "sse", options.Transport)
	assert.Equal(t, "127.0.0.1:8080", options.Addr)
	assert.True(t, options.Headed)
	assert.Equal(t, 5000.0, options.ActionTimeoutMs)
	assert.Equal(t, 1000, options.MaxContentLength)

	_, err = flags.ParseArgs(options, []string{"-t", "websocket"})
	assert.NotNil(t, err)
}

func TestNewConfig_FromOptions(t *testing.T) {
	config := newConfig(&Options{
		Headed:         true,
		OutputURL:      "mem://localhost/shots",
		ViewportWidth:  800,
		ViewportHeight: 600,
	})
	assert.False(t, config.Headless)
	assert.Equal(t, "mem://localhost/shots", config.OutputURL)
	assert.Equal(t, 800, config.ViewportWidth)
	assert.Equal(t, 600, config.ViewportHeight)
	assert.Equal(t, 30000.0, config.ActionTimeoutMs)
}
