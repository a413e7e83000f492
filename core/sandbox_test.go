package core

import (
	"bytes"
	"errors"
	"testing"

	"github.com/TPO-Code/pointsandbox/options"
	"github.com/stretchr/testify/assert"
)

func TestGreet(t *testing.T) {
	assert.Equal(t, "Hello, Rust!", Greet("Rust"))
	assert.Equal(t, "Hello, Go!", Greet("Go"))
	assert.Equal(t, "Hello, !", Greet(""))
}

func TestSandboxRun(t *testing.T) {
	for _, checked := range []bool{false, true} {
		buf := new(bytes.Buffer)
		sb := NewSandbox(buf, &options.SandboxOptions{Name: "Rust", Checked: checked})

		err := sb.Run()
		assert.Nil(t, err)
		assert.Equal(t, "Hello, Rust!\ndistance^2 = 25\nmoved origin = Point{x: 1, y: 1}\n", buf.String())
	}
}

func TestSandboxRunDefaultName(t *testing.T) {
	buf := new(bytes.Buffer)
	err := NewSandbox(buf, nil).Run()
	assert.Nil(t, err)
	assert.Contains(t, buf.String(), "Hello, Go!\n")
}

type failingWriter struct {
	failAfter int
	writes    int
}

var errWrite = errors.New("write failed")

func (fw *failingWriter) Write(p []byte) (int, error) {
	if fw.writes >= fw.failAfter {
		return 0, errWrite
	}
	fw.writes++
	return len(p), nil
}

func TestSandboxRunWriteError(t *testing.T) {
	for failAfter := 0; failAfter < 3; failAfter++ {
		err := NewSandbox(&failingWriter{failAfter: failAfter}, nil).Run()
		assert.True(t, errors.Is(err, errWrite), "failAfter %d", failAfter)
	}
}
