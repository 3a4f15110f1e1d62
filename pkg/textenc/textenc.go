// Package textenc is the encoding boundary between on-disk bytes and the
// formatter's in-memory UTF-8 text: byte-order-mark detection, decoding and
// encoding for the supported source file encodings. The formatting core
// never sees BOM bytes or non-UTF-8 data.
package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrUnknownEncoding indicates an unrecognized encoding name.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrUnsupportedEncoding indicates an encoding that is detected but not
	// implemented, such as UTF-16BE.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrInvalidText indicates bytes that do not decode under the selected
	// encoding.
	ErrInvalidText = errors.New("invalid text")
)

// Encoding identifies a supported on-disk text encoding.
type Encoding string

const (
	// ANSI is the Windows-1252 single byte encoding.
	ANSI Encoding = "ansi"

	// UTF8 is UTF-8, with or without a BOM.
	UTF8 Encoding = "utf8"

	// UTF16LE is little-endian UTF-16.
	UTF16LE Encoding = "utf16le"

	// UTF16BE is big-endian UTF-16. Detected from a BOM but not supported.
	UTF16BE Encoding = "utf16be"
)

// Parse parses a user-supplied encoding name.
func Parse(s string) (Encoding, error) {
	switch Encoding(strings.ToLower(s)) {
	case ANSI:
		return ANSI, nil
	case UTF8, "":
		return UTF8, nil
	case UTF16LE, "utf16":
		return UTF16LE, nil
	case UTF16BE:
		return UTF16BE, fmt.Errorf("%w: utf16be", ErrUnsupportedEncoding)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
	}
}

// BOM returns the byte-order-mark bytes for the encoding, or nil if the
// encoding carries none by convention (ANSI).
func BOM(enc Encoding) []byte {
	switch enc {
	case UTF8:
		return []byte{0xEF, 0xBB, 0xBF}
	case UTF16LE:
		return []byte{0xFF, 0xFE}
	case UTF16BE:
		return []byte{0xFE, 0xFF}
	default:
		return nil
	}
}

// DetectBOM inspects the leading bytes of data for a byte-order mark.
// It returns the indicated encoding, the BOM length, and whether a BOM was
// found. A detected BOM overrides whatever encoding the user requested.
func DetectBOM(data []byte) (Encoding, int, bool) {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return UTF8, 3, true
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return UTF16LE, 2, true
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return UTF16BE, 2, true
	default:
		return "", 0, false
	}
}

// Decode converts on-disk bytes (without BOM) to a UTF-8 string.
func Decode(data []byte, enc Encoding) (string, error) {
	switch enc {
	case UTF8:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: not valid UTF-8", ErrInvalidText)
		}
		return string(data), nil
	case ANSI:
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidText, err)
		}
		return string(decoded), nil
	case UTF16LE:
		codec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
		decoded, err := codec.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidText, err)
		}
		return string(decoded), nil
	case UTF16BE:
		return "", fmt.Errorf("%w: utf16be", ErrUnsupportedEncoding)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, enc)
	}
}

// Encode converts a UTF-8 string back to on-disk bytes (without BOM).
func Encode(text string, enc Encoding) ([]byte, error) {
	switch enc {
	case UTF8:
		return []byte(text), nil
	case ANSI:
		encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidText, err)
		}
		return encoded, nil
	case UTF16LE:
		codec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
		encoded, err := codec.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidText, err)
		}
		return encoded, nil
	case UTF16BE:
		return nil, fmt.Errorf("%w: utf16be", ErrUnsupportedEncoding)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, enc)
	}
}
