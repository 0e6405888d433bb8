package txhashing

import (
	"bytes"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
	"github.com/utxogate/utxogate/domain/ledger/utils/serialization"
	"golang.org/x/crypto/blake2b"
)

// HashSize is the size of a signing hash in bytes.
const HashSize = blake2b.Size256

// Hash is the blake2b-256 digest of a signing payload.
type Hash [HashSize]byte

// String returns the hash as a hex string.
func (hash Hash) String() string {
	return hex.EncodeToString(hash[:])
}

// SigningPayload returns the canonical serialization of tx that input
// signatures are computed over. It contains, in order and little endian:
//
//	id                         string
//	len(inputs)                uint64
//	  utxoId.transactionID     string
//	  utxoId.outputIndex       uint32
//	  owner                    string
//	len(outputs)               uint64
//	  recipient                string
//	  amount                   int64
//	timestamp                  int64
//
// where a string is a uint64 byte length followed by the bytes. Signatures
// are never part of the payload, so every input signs the same bytes.
func SigningPayload(tx *externalapi.Transaction) ([]byte, error) {
	w := &bytes.Buffer{}
	err := serializeForSigning(w, tx)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// SigningHash returns the digest of tx's signing payload.
func SigningHash(tx *externalapi.Transaction) (*Hash, error) {
	payload, err := SigningPayload(tx)
	if err != nil {
		return nil, err
	}
	hash := HashPayload(payload)
	return &hash, nil
}

// HashPayload returns the blake2b-256 digest of payload.
func HashPayload(payload []byte) Hash {
	return blake2b.Sum256(payload)
}

func serializeForSigning(w io.Writer, tx *externalapi.Transaction) error {
	if tx == nil {
		return errors.New("cannot serialize a nil transaction")
	}

	err := serialization.WriteElements(w, tx.ID, uint64(len(tx.Inputs)))
	if err != nil {
		return err
	}
	for i, input := range tx.Inputs {
		if input == nil {
			return errors.Errorf("input %d of transaction %s is nil", i, tx.ID)
		}
		err = serialization.WriteElements(w, input.UTXOID.TransactionID, input.UTXOID.OutputIndex, input.Owner)
		if err != nil {
			return err
		}
	}

	err = serialization.WriteElement(w, uint64(len(tx.Outputs)))
	if err != nil {
		return err
	}
	for i, output := range tx.Outputs {
		if output == nil {
			return errors.Errorf("output %d of transaction %s is nil", i, tx.ID)
		}
		err = serialization.WriteElements(w, output.Recipient, output.Amount)
		if err != nil {
			return err
		}
	}

	return serialization.WriteElement(w, tx.Timestamp)
}
