package utxopool

import (
	"encoding/hex"

	"github.com/kaspanet/go-muhash"
	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
)

// Commitment is a MuHash digest of a UTXO set. It depends only on the set's
// content, not on the order UTXOs were added in, so two pools holding the
// same UTXOs always commit to the same value.
type Commitment [32]byte

// String returns the commitment as a hex string.
func (c Commitment) String() string {
	return hex.EncodeToString(c[:])
}

type commitmentBuilder struct {
	multiset *muhash.MuHash
}

func newCommitmentBuilder() *commitmentBuilder {
	return &commitmentBuilder{multiset: muhash.NewMuHash()}
}

func (b *commitmentBuilder) add(id externalapi.UTXOID, utxo *externalapi.UTXO) error {
	element, err := serializeUTXOIDAndUTXO(id, utxo)
	if err != nil {
		return err
	}
	b.multiset.Add(element)
	return nil
}

func (b *commitmentBuilder) finalize() Commitment {
	hash := b.multiset.Finalize()
	return Commitment(*hash.AsArray())
}
