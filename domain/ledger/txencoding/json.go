package txencoding

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

func marshalJSON(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return append(data, '\n'), nil
}

func unmarshalJSON(data []byte, v interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	err := decoder.Decode(v)
	if err != nil {
		return errors.Wrap(err, "malformed JSON")
	}
	if decoder.More() {
		return errors.New("malformed JSON: unexpected data after the top-level value")
	}
	return nil
}
