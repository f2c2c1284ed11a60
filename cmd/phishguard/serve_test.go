package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServerWriteTimeout(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		expected time.Duration
	}{
		{name: "bounded classifier", timeout: 5 * time.Second, expected: 15 * time.Second},
		{name: "no classifier timeout", timeout: 0, expected: 0},
		{name: "negative timeout", timeout: -time.Second, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, serverWriteTimeout(tt.timeout))
		})
	}
}
