package cardano

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexToASCII(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "valid", in: "74657374", want: "test"},
		{name: "uppercase digits", in: "48554E54", want: "HUNT"},
		{name: "asset name", in: "6e7574636f696e", want: "nutcoin"},
		{name: "utf8 multibyte", in: "e282b3", want: "₳"},
		{name: "empty", in: "", want: ""},
		{name: "odd length", in: "abc", want: InvalidHex},
		{name: "non hex", in: "zz", want: InvalidHex},
		{name: "invalid utf8", in: "ff", want: InvalidHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HexToASCII(tt.in))
		})
	}
}
