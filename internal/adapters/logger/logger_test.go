package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "plain error",
			err:      errors.New("something broke"),
			expected: "Error: something broke",
		},
		{
			name: "wrapped chain",
			err: zerr.Wrap(zerr.Wrap(errors.New("permission denied"),
				"failed to read manifest"), "configuration failed"),
			expected: "Error: configuration failed\n" +
				"\n" +
				"  Caused by:\n" +
				"    → failed to read manifest\n" +
				"    → permission denied",
		},
		{
			name: "multi line cause",
			err:  zerr.Wrap(errors.New("line one\nline two"), "outer"),
			expected: "Error: outer\n" +
				"\n" +
				"  Caused by:\n" +
				"    → line one\n" +
				"      line two",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, formatError(test.err))
		})
	}
}

func TestLoggerErrorNil(t *testing.T) {
	t.Parallel()

	// Must not panic or log anything.
	New().Error(nil)
}
