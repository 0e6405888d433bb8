package txencoding

import (
	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
)

type utxoSetFile struct {
	UTXOs []utxoEntry `json:"utxos" cbor:"utxos"`
}

type utxoEntry struct {
	UTXOID    utxoIDEntry `json:"utxoId" cbor:"utxoId"`
	Recipient string      `json:"recipient" cbor:"recipient"`
	Amount    int64       `json:"amount" cbor:"amount"`
}

// EncodeUTXOSet encodes pairs, in order, in the given format.
func EncodeUTXOSet(format Format, pairs []*externalapi.UTXOIDAndUTXOPair) ([]byte, error) {
	file := utxoSetFile{UTXOs: make([]utxoEntry, len(pairs))}
	for i, pair := range pairs {
		if pair == nil || pair.UTXO == nil {
			return nil, errors.Errorf("UTXO %d is nil", i)
		}
		file.UTXOs[i] = utxoEntry{
			UTXOID: utxoIDEntry{
				TransactionID: pair.UTXOID.TransactionID,
				OutputIndex:   pair.UTXOID.OutputIndex,
			},
			Recipient: pair.UTXO.Recipient,
			Amount:    pair.UTXO.Amount,
		}
	}
	return format.marshal(&file)
}

// DecodeUTXOSet decodes a UTXO set encoded in the given format. Duplicate
// UTXOIDs are left for the pool to reject.
func DecodeUTXOSet(format Format, data []byte) ([]*externalapi.UTXOIDAndUTXOPair, error) {
	var file utxoSetFile
	err := format.unmarshal(data, &file)
	if err != nil {
		return nil, err
	}

	pairs := make([]*externalapi.UTXOIDAndUTXOPair, len(file.UTXOs))
	for i, entry := range file.UTXOs {
		pairs[i] = &externalapi.UTXOIDAndUTXOPair{
			UTXOID: externalapi.UTXOID{
				TransactionID: entry.UTXOID.TransactionID,
				OutputIndex:   entry.UTXOID.OutputIndex,
			},
			UTXO: &externalapi.UTXO{Recipient: entry.Recipient, Amount: entry.Amount},
		}
	}
	return pairs, nil
}
