package txencoding

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
)

type transactionFile struct {
	ID        string        `json:"id" cbor:"id"`
	Inputs    []inputEntry  `json:"inputs" cbor:"inputs"`
	Outputs   []outputEntry `json:"outputs" cbor:"outputs"`
	Timestamp int64         `json:"timestamp" cbor:"timestamp"`
}

type utxoIDEntry struct {
	TransactionID string `json:"txId" cbor:"txId"`
	OutputIndex   uint32 `json:"outputIndex" cbor:"outputIndex"`
}

type inputEntry struct {
	UTXOID    utxoIDEntry `json:"utxoId" cbor:"utxoId"`
	Owner     string      `json:"owner" cbor:"owner"`
	Signature string      `json:"signature,omitempty" cbor:"signature,omitempty"`
}

type outputEntry struct {
	Recipient string `json:"recipient" cbor:"recipient"`
	Amount    int64  `json:"amount" cbor:"amount"`
}

// EncodeTransaction encodes tx in the given format.
func EncodeTransaction(format Format, tx *externalapi.Transaction) ([]byte, error) {
	if tx == nil {
		return nil, errors.New("cannot encode a nil transaction")
	}

	file := transactionFile{
		ID:        tx.ID,
		Inputs:    make([]inputEntry, len(tx.Inputs)),
		Outputs:   make([]outputEntry, len(tx.Outputs)),
		Timestamp: tx.Timestamp,
	}
	for i, input := range tx.Inputs {
		if input == nil {
			return nil, errors.Errorf("input %d of transaction %s is nil", i, tx.ID)
		}
		file.Inputs[i] = inputEntry{
			UTXOID: utxoIDEntry{
				TransactionID: input.UTXOID.TransactionID,
				OutputIndex:   input.UTXOID.OutputIndex,
			},
			Owner:     input.Owner,
			Signature: hex.EncodeToString(input.Signature),
		}
	}
	for i, output := range tx.Outputs {
		if output == nil {
			return nil, errors.Errorf("output %d of transaction %s is nil", i, tx.ID)
		}
		file.Outputs[i] = outputEntry{Recipient: output.Recipient, Amount: output.Amount}
	}

	return format.marshal(&file)
}

// DecodeTransaction decodes a transaction encoded in the given format.
func DecodeTransaction(format Format, data []byte) (*externalapi.Transaction, error) {
	var file transactionFile
	err := format.unmarshal(data, &file)
	if err != nil {
		return nil, err
	}

	tx := &externalapi.Transaction{
		ID:        file.ID,
		Inputs:    make([]*externalapi.TransactionInput, len(file.Inputs)),
		Outputs:   make([]*externalapi.TransactionOutput, len(file.Outputs)),
		Timestamp: file.Timestamp,
	}
	for i, entry := range file.Inputs {
		var signature []byte
		if entry.Signature != "" {
			signature, err = hex.DecodeString(entry.Signature)
			if err != nil {
				return nil, errors.Wrapf(err, "signature of input %d is not hex encoded", i)
			}
		}
		tx.Inputs[i] = &externalapi.TransactionInput{
			UTXOID: externalapi.UTXOID{
				TransactionID: entry.UTXOID.TransactionID,
				OutputIndex:   entry.UTXOID.OutputIndex,
			},
			Owner:     entry.Owner,
			Signature: signature,
		}
	}
	for i, entry := range file.Outputs {
		tx.Outputs[i] = &externalapi.TransactionOutput{Recipient: entry.Recipient, Amount: entry.Amount}
	}
	return tx, nil
}
