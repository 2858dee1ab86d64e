package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		n    int
		want string
	}{
		"zero":                {n: 0, want: "0 B"},
		"under a kilobyte":    {n: 512, want: "512 B"},
		"exact kilobyte":      {n: 1024, want: "1.0 KB"},
		"fractional kilobyte": {n: 1536, want: "1.5 KB"},
		"megabyte":            {n: 1024 * 1024, want: "1.0 MB"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatBytes(tt.n))
		})
	}
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
	assert.NotEqual(t, Checksum([]byte("a")), Checksum([]byte("b")))
}
