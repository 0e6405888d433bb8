package utxopool

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
)

// Snapshot is an immutable in-memory UTXO set. It implements
// externalapi.UTXOView and is safe for concurrent use.
type Snapshot struct {
	utxos map[externalapi.UTXOID]externalapi.UTXO
}

// NewSnapshot copies pairs into a new Snapshot. Two pairs with the same
// UTXOID are an error.
func NewSnapshot(pairs []*externalapi.UTXOIDAndUTXOPair) (*Snapshot, error) {
	utxos := make(map[externalapi.UTXOID]externalapi.UTXO, len(pairs))
	for _, pair := range pairs {
		if pair.UTXO == nil {
			return nil, errors.Errorf("UTXO %s is nil", pair.UTXOID)
		}
		if _, exists := utxos[pair.UTXOID]; exists {
			return nil, errors.Errorf("UTXO %s appears more than once", pair.UTXOID)
		}
		utxos[pair.UTXOID] = *pair.UTXO
	}
	return &Snapshot{utxos: utxos}, nil
}

// GetUTXO returns a copy of the UTXO stored under (transactionID,
// outputIndex). It never fails.
func (s *Snapshot) GetUTXO(transactionID string, outputIndex uint32) (*externalapi.UTXO, bool, error) {
	utxo, ok := s.utxos[externalapi.UTXOID{TransactionID: transactionID, OutputIndex: outputIndex}]
	if !ok {
		return nil, false, nil
	}
	return &utxo, true, nil
}

// Len returns the number of UTXOs in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.utxos)
}

// Pairs returns copies of all the UTXOs, sorted by transaction ID and then
// output index.
func (s *Snapshot) Pairs() []*externalapi.UTXOIDAndUTXOPair {
	pairs := make([]*externalapi.UTXOIDAndUTXOPair, 0, len(s.utxos))
	for id, utxo := range s.utxos {
		utxoCopy := utxo
		pairs = append(pairs, &externalapi.UTXOIDAndUTXOPair{UTXOID: id, UTXO: &utxoCopy})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].UTXOID.TransactionID != pairs[j].UTXOID.TransactionID {
			return pairs[i].UTXOID.TransactionID < pairs[j].UTXOID.TransactionID
		}
		return pairs[i].UTXOID.OutputIndex < pairs[j].UTXOID.OutputIndex
	})
	return pairs
}

// Commitment returns the MuHash commitment of the snapshot's content.
func (s *Snapshot) Commitment() (Commitment, error) {
	builder := newCommitmentBuilder()
	for id, utxo := range s.utxos {
		utxoCopy := utxo
		err := builder.add(id, &utxoCopy)
		if err != nil {
			return Commitment{}, err
		}
	}
	return builder.finalize(), nil
}
