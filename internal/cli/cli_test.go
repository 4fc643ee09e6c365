package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptReturnsEOFWhenInputEnds(t *testing.T) {
	a := &App{reader: bufio.NewReader(strings.NewReader(""))}

	_, err := a.prompt("> ")

	assert.ErrorIs(t, err, io.EOF)
}

func TestQuitOnEOFClosedInputIsNormalExit(t *testing.T) {
	err := fmt.Errorf("input closed: %w", io.EOF)

	assert.NoError(t, quitOnEOF(err))
}

func TestQuitOnEOFOtherErrorsPropagate(t *testing.T) {
	boom := errors.New("terminal unavailable")

	assert.Equal(t, boom, quitOnEOF(boom))
}

func TestPromptTrimsWhitespace(t *testing.T) {
	a := &App{reader: bufio.NewReader(strings.NewReader("  latte  \n"))}

	got, err := a.prompt("> ")

	assert.NoError(t, err)
	assert.Equal(t, "latte", got)
}
