package workspace

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/cjdinger/lint-sasjs/errors"
)

// LookupEncoding resolves an IANA charset name. The empty name and UTF-8
// resolve to UTF-8.
//
//nolint:ireturn // x/text encodings are interfaces
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return unicode.UTF8, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "unknown encoding "+name)
	}
	if enc == nil {
		return nil, errors.New(errors.CodeInvalidInput, "unsupported encoding "+name)
	}
	return enc, nil
}

// Decode converts data from the named charset to UTF-8. A leading byte
// order mark selects the matching UTF decoder instead and is removed.
func Decode(data []byte, charset string) (string, error) {
	enc, err := LookupEncoding(charset)
	if err != nil {
		return "", err
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// IsText sniffs data and reports whether it is a kind of text/plain, along
// with the detected MIME type.
func IsText(data []byte) (string, bool) {
	detected := mimetype.Detect(data)
	for mt := detected; mt != nil; mt = mt.Parent() {
		if mt.Is("text/plain") {
			return detected.String(), true
		}
	}
	return detected.String(), false
}
