package txencoding

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// cborEncMode sorts map keys so equal values always encode to equal bytes.
var cborEncMode = mustCBOREncMode()

func mustCBOREncMode() cbor.EncMode {
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return encMode
}

func marshalCBOR(v interface{}) ([]byte, error) {
	data, err := cborEncMode.Marshal(v)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}

func unmarshalCBOR(data []byte, v interface{}) error {
	err := cbor.Unmarshal(data, v)
	if err != nil {
		return errors.Wrap(err, "malformed CBOR")
	}
	return nil
}
