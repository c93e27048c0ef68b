package tools

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tartampluch/go-toolbox/internal/config"
)

// decoders are tried in order; padded forms first so that "Zm8=" is not
// rejected by a raw decoder.
var decoders = []*base64.Encoding{
	base64.StdEncoding,
	base64.URLEncoding,
	base64.RawStdEncoding,
	base64.RawURLEncoding,
}

// EncodeBase64 returns the standard, padded Base64 form of s.
func EncodeBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// DecodeBase64 accepts standard or URL-safe input, padded or not.
// Surrounding whitespace is ignored. Decoded bytes that are not UTF-8 text
// are rejected.
func DecodeBase64(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, enc := range decoders {
		b, err := enc.DecodeString(s)
		if err != nil {
			continue
		}
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: %s", ErrBase64, config.ErrBase64Binary)
		}
		return string(b), nil
	}
	return "", fmt.Errorf("%w: %d bytes", ErrBase64, len(s))
}
