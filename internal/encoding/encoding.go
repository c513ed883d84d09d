package encoding

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ToUTF8 converts the raw bytes of a data file to UTF-8. Plant record files
// written by older tooling show up in Windows-1252 or UTF-16, so decoding
// cannot assume UTF-8 input.
//
// Detection order:
//  1. BOM (UTF-8 BOM is stripped; UTF-16 LE/BE is decoded)
//  2. Content that is already valid UTF-8 is returned as-is
//  3. Heuristic detection via chardet
//  4. Fallback to Windows-1252
func ToUTF8(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, bomUTF8) {
		return data[len(bomUTF8):], nil
	}

	if bytes.HasPrefix(data, bomUTF16LE) {
		return decodeUTF16(data, unicode.LittleEndian)
	}

	if bytes.HasPrefix(data, bomUTF16BE) {
		return decodeUTF16(data, unicode.BigEndian)
	}

	if utf8.Valid(data) {
		return data, nil
	}

	detector := chardet.NewTextDetector()

	result, err := detector.DetectBest(data)
	if err == nil {
		switch result.Charset {
		case "UTF-8":
			return data, nil
		case "ISO-8859-9":
			return charmap.ISO8859_9.NewDecoder().Bytes(data)
		}
	}

	return charmap.Windows1252.NewDecoder().Bytes(data)
}

func decodeUTF16(data []byte, endianness unicode.Endianness) ([]byte, error) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()

	out, err := decoder.Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decoding utf-16: %w", err)
	}

	return out, nil
}
