package brat

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// textDecoder decodes raw file bytes into the document text. A nil
// encoding means UTF-8, which is passed through byte-for-byte.
type textDecoder struct {
	encoding encoding.Encoding
}

func newTextDecoder(name string) (*textDecoder, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return &textDecoder{}, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown text encoding %q: %w", name, err)
	}
	if enc == nil {
		// The IANA index knows the name but has no decoder for it.
		return nil, fmt.Errorf("unsupported text encoding %q", name)
	}
	return &textDecoder{encoding: enc}, nil
}

func (d *textDecoder) decode(raw []byte) (string, error) {
	if d.encoding == nil {
		return string(raw), nil
	}
	out, _, err := transform.Bytes(d.encoding.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode text: %w", err)
	}
	return string(out), nil
}
