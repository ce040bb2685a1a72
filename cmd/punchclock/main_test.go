package main

import (
	"bytes"
	"testing"

	"github.com/alexanderramin/punchclock/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestConfigPathFromArgs(t *testing.T) {
	assert.Equal(t, "/etc/pc.yml", configPathFromArgs([]string{"status", "--config", "/etc/pc.yml", "--json"}))
	assert.Equal(t, "a.yml", configPathFromArgs([]string{"--config=a.yml", "summary", "--from", "09:00"}))
	assert.Empty(t, configPathFromArgs([]string{"in", "--note", "x"}))
}

func TestUseCaseObserver_Toggle(t *testing.T) {
	var buf bytes.Buffer
	assert.IsType(t, service.NoopUseCaseObserver{}, useCaseObserver(false, &buf))
	assert.NotEqual(t, service.NoopUseCaseObserver{}, useCaseObserver(true, &buf))
}
