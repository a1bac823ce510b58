// Package chardet is the text-decoding collaborator of the parser: it
// sniffs the encoding of raw markup bytes and returns decoded text along
// with the name of the encoding used. The parser core itself only ever
// sees decoded text.
package chardet

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// sniffLen bounds the prefix scanned for a charset declaration.
const sniffLen = 1024

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// Decode sniffs the encoding of data and returns the decoded text and the
// canonical name of the encoding used. Detection order: byte order mark,
// then a charset declaration within the first kilobyte, then UTF-8.
func Decode(data []byte) (text, name string, err error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[len(bomUTF8):]), "utf-8", nil
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), data, "utf-16be")
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), data, "utf-16le")
	}
	if label := sniffCharset(data); label != "" {
		if text, name, err = DecodeAs(data, label); err == nil {
			return text, name, nil
		}
		// An unknown or broken declared charset falls through to UTF-8,
		// the same tolerance the parser applies to the markup itself.
	}
	return string(data), "utf-8", nil
}

// DecodeAs decodes data with the encoding known under the given label,
// resolved the way browsers resolve charset labels.
func DecodeAs(data []byte, label string) (text, name string, err error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", "", fmt.Errorf("chardet: unknown charset %q: %w", label, err)
	}
	name, err = htmlindex.Name(enc)
	if err != nil {
		name = label
	}
	return decodeWith(enc, data, name)
}

func decodeWith(enc encoding.Encoding, data []byte, name string) (string, string, error) {
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("chardet: decoding %s: %w", name, err)
	}
	return string(decoded), name, nil
}

// sniffCharset looks for a charset=... declaration in the leading bytes,
// as found in <meta> tags or an XML prolog's encoding attribute.
func sniffCharset(data []byte) string {
	prefix := data
	if len(prefix) > sniffLen {
		prefix = prefix[:sniffLen]
	}
	lower := bytes.ToLower(prefix)
	for _, key := range [][]byte{[]byte("charset="), []byte("encoding=")} {
		i := bytes.Index(lower, key)
		if i < 0 {
			continue
		}
		rest := prefix[i+len(key):]
		rest = bytes.TrimLeft(rest, `"'`)
		end := bytes.IndexFunc(rest, func(r rune) bool {
			switch r {
			case '"', '\'', '>', ' ', '\t', '\r', '\n', '/', ';', '?':
				return true
			}
			return false
		})
		if end < 0 {
			end = len(rest)
		}
		if label := string(rest[:end]); label != "" {
			return label
		}
	}
	return ""
}
