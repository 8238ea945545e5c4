package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecorateText(t *testing.T) {
	assert.Equal(t, ErrorColor+"oops"+DefaultColor, DecorateText("oops", ErrorMessage))
	assert.Equal(t, SuccessColor+"done"+DefaultColor, DecorateText("done", SuccessMessage))
	assert.Equal(t, DefaultColor+"plain"+DefaultColor, DecorateText("plain", DefaultMessage))
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{250 * time.Millisecond, "250ms"},
		{time.Second + 500*time.Millisecond, "1.50s"},
		{90 * time.Second, "1m 30.00s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatTime(tt.duration))
	}
}
