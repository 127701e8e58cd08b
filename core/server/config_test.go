package server_test

import (
	"testing"

	"q3-demo-checker/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"Set", "9090", ":9090"},
		{"Empty", "", ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.Address())
		})
	}
}

func TestConfig_BodyLimit(t *testing.T) {
	assert.Equal(t, 8*1024*1024, server.Config{BodyLimitMB: 8}.BodyLimit())
	assert.Equal(t, 64*1024*1024, server.Config{}.BodyLimit())
}
