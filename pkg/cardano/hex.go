package cardano

import (
	"encoding/hex"
	"unicode/utf8"
)

// InvalidHex is returned by HexToASCII when the input cannot be decoded.
const InvalidHex = "Invalid Hex"

// HexToASCII decodes a hex-encoded asset name for display.
// Malformed input never fails the caller, it yields InvalidHex.
func HexToASCII(s string) string {
	if s == "" {
		return ""
	}
	b, err := hex.DecodeString(s)
	if err != nil || !utf8.Valid(b) {
		return InvalidHex
	}
	return string(b)
}
