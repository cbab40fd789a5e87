// Package charset detects and decodes bank export file encodings. Banks ship
// CSVs in UTF-8 (with or without BOM), Windows-1252, and whatever else their
// export tooling produces, so decoding is lossy-by-default and never fatal.
package charset

import (
	"strings"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// HeadDetectMaxBytes bounds how much of a file is sampled for detection.
const HeadDetectMaxBytes = 128 * 1024

// fallbackEncoding is used when detection fails or names an unknown charset.
const fallbackEncoding = "utf-8"

// Detector guesses the charset name of a text prefix.
type Detector interface {
	Detect(prefix []byte) string
}

// ChardetDetector detects charsets statistically via the chardet library.
type ChardetDetector struct{}

// Detect returns the best-guess charset name, or "utf-8" when unsure.
func (ChardetDetector) Detect(prefix []byte) string {
	res, err := chardet.NewTextDetector().DetectBest(prefix)
	if err != nil || res == nil || res.Charset == "" {
		return fallbackEncoding
	}
	return res.Charset
}

// Fixed is a Detector that always reports the same charset. Formats with a
// known encoding use it to skip detection; tests use it to pin behavior.
type Fixed string

// Detect returns the fixed charset name.
func (f Fixed) Detect([]byte) string { return string(f) }

// Decode converts raw file bytes to UTF-8 text. The charset is taken from
// det's guess over the first HeadDetectMaxBytes bytes. A leading byte-order
// mark is stripped, unknown charset names fall back to UTF-8, and
// undecodable bytes are replaced rather than reported.
func Decode(data []byte, det Detector) []byte {
	prefix := data
	if len(prefix) > HeadDetectMaxBytes {
		prefix = prefix[:HeadDetectMaxBytes]
	}

	enc := lookup(det.Detect(prefix))
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return data
	}
	return out
}

func lookup(name string) encoding.Encoding {
	enc, err := htmlindex.Get(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || enc == nil {
		enc, _ = htmlindex.Get(fallbackEncoding)
	}
	return enc
}
