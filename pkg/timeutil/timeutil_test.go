//go:build !integration

package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "zero", d: 0, want: "0ms"},
		{name: "milliseconds", d: 250 * time.Millisecond, want: "250ms"},
		{name: "seconds", d: 1500 * time.Millisecond, want: "1.5s"},
		{name: "minutes", d: 90 * time.Second, want: "1.5m"},
		{name: "hours", d: 90 * time.Minute, want: "1.5h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}
