package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSandboxOptionsDefaults(t *testing.T) {
	opt := NewSandboxOptions(nil)
	assert.NotNil(t, opt)
	assert.Equal(t, DefaultName, opt.Name)
	assert.False(t, opt.Debug)
	assert.False(t, opt.Checked)
}

func TestNewSandboxOptionsOverrides(t *testing.T) {
	opt := NewSandboxOptions(&SandboxOptions{Debug: true, Name: "Rust", Checked: true})
	assert.Equal(t, "Rust", opt.Name)
	assert.True(t, opt.Debug)
	assert.True(t, opt.Checked)
}

func TestNewSandboxOptionsEmptyNameKeepsDefault(t *testing.T) {
	opt := NewSandboxOptions(&SandboxOptions{Checked: true})
	assert.Equal(t, DefaultName, opt.Name)
	assert.True(t, opt.Checked)
}
