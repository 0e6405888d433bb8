// Package txencoding reads and writes transaction and UTXO set files.
//
// Two formats are supported: JSON, for files written by hand, and CBOR, for
// compact files exchanged between tools. Both carry the same fields;
// signatures are hex encoded in either.
package txencoding

import (
	"strings"

	"github.com/pkg/errors"
)

// Format is a file encoding.
type Format string

// The supported formats.
const (
	JSONFormat Format = "json"
	CBORFormat Format = "cbor"
)

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case JSONFormat:
		return JSONFormat, nil
	case CBORFormat:
		return CBORFormat, nil
	default:
		return "", errors.Errorf("unknown format %q, expected %q or %q", s, JSONFormat, CBORFormat)
	}
}

func (f Format) marshal(v interface{}) ([]byte, error) {
	switch f {
	case JSONFormat:
		return marshalJSON(v)
	case CBORFormat:
		return marshalCBOR(v)
	default:
		return nil, errors.Errorf("unknown format %q", f)
	}
}

func (f Format) unmarshal(data []byte, v interface{}) error {
	switch f {
	case JSONFormat:
		return unmarshalJSON(data, v)
	case CBORFormat:
		return unmarshalCBOR(data, v)
	default:
		return errors.Errorf("unknown format %q", f)
	}
}
