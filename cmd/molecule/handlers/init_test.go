package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitOptionsInteractive(t *testing.T) {
	t.Parallel()

	assert.True(t, InitOptions{}.interactive())
	assert.True(t, InitOptions{Force: true}.interactive())
	assert.False(t, InitOptions{Driver: "hetznercloud"}.interactive())
	assert.False(t, InitOptions{ServerType: "cx22"}.interactive())
}

func TestDefaultOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fallback", defaultOr("", "fallback"))
	assert.Equal(t, "value", defaultOr("value", "fallback"))
}
