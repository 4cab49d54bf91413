package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		bytes uint64
		want  string
	}{
		{0, "0.00 B"},
		{512, "512.00 B"},
		{1023, "1023.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{5 * 1024 * 1024 * 1024, "5.00 GB"},
		{1024 * 1024 * 1024 * 1024, "1.00 TB"},
		{1024 * 1024 * 1024 * 1024 * 1024, "1.00 PB"},
		// Beyond PB the unit is capped, never recursed past.
		{1024 * 1024 * 1024 * 1024 * 1024 * 1024, "1024.00 PB"},
	}

	for _, tt := range tests {
		req.Equal(tt.want, FormatSize(tt.bytes), "FormatSize(%d)", tt.bytes)
	}
}
