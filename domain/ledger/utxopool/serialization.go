package utxopool

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
	"github.com/utxogate/utxogate/domain/ledger/utils/serialization"
)

var utxoBucketPrefix = []byte("utxo/")

// utxoKey returns the database key of id: the bucket prefix followed by the
// serialized transaction ID and output index.
func utxoKey(id externalapi.UTXOID) ([]byte, error) {
	w := bytes.NewBuffer(append([]byte(nil), utxoBucketPrefix...))
	err := serialization.WriteElements(w, id.TransactionID, id.OutputIndex)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func utxoIDFromKey(key []byte) (externalapi.UTXOID, error) {
	if !bytes.HasPrefix(key, utxoBucketPrefix) {
		return externalapi.UTXOID{}, errors.Errorf("key %x is not in the UTXO bucket", key)
	}
	r := bytes.NewReader(key[len(utxoBucketPrefix):])
	var id externalapi.UTXOID
	err := serialization.ReadElements(r, &id.TransactionID, &id.OutputIndex)
	if err != nil {
		return externalapi.UTXOID{}, errors.Wrapf(err, "malformed UTXO key %x", key)
	}
	if r.Len() != 0 {
		return externalapi.UTXOID{}, errors.Errorf("malformed UTXO key %x: %d trailing bytes", key, r.Len())
	}
	return id, nil
}

func serializeUTXO(utxo *externalapi.UTXO) ([]byte, error) {
	w := &bytes.Buffer{}
	err := serialization.WriteElements(w, utxo.Recipient, utxo.Amount)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func deserializeUTXO(data []byte) (*externalapi.UTXO, error) {
	r := bytes.NewReader(data)
	utxo := &externalapi.UTXO{}
	err := serialization.ReadElements(r, &utxo.Recipient, &utxo.Amount)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed UTXO %x", data)
	}
	if r.Len() != 0 {
		return nil, errors.Errorf("malformed UTXO %x: %d trailing bytes", data, r.Len())
	}
	return utxo, nil
}

// serializeUTXOIDAndUTXO is the element added to the commitment for every
// UTXO in the set.
func serializeUTXOIDAndUTXO(id externalapi.UTXOID, utxo *externalapi.UTXO) ([]byte, error) {
	w := &bytes.Buffer{}
	err := serialization.WriteElements(w, id.TransactionID, id.OutputIndex, utxo.Recipient, utxo.Amount)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
