package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{4096, "4,096"},
		{100000, "100,000"},
		{1234567, "1,234,567"},
		{9223372036854775807, "9,223,372,036,854,775,807"},
		{-1234, "-1,234"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FormatSize(tt.in), "FormatSize(%d)", tt.in)
	}
}
