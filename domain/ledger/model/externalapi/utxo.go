package externalapi

// UTXO is an unspent transaction output: value owned by Recipient that can be
// spent once by an input referencing its UTXOID.
type UTXO struct {
	Recipient string
	Amount    int64
}

// Clone returns a copy of the UTXO.
func (utxo *UTXO) Clone() *UTXO {
	if utxo == nil {
		return nil
	}
	utxoClone := *utxo
	return &utxoClone
}

// UTXOIDAndUTXOPair is a UTXO together with the UTXOID it's stored under.
type UTXOIDAndUTXOPair struct {
	UTXOID UTXOID
	UTXO   *UTXO
}

// UTXOView is a read-only, point-in-time lookup of unspent outputs. Every
// call on the same view must reflect the same state.
//
// A non-nil error means the view itself failed (e.g. a storage fault). A
// missing UTXO is reported with found == false and a nil error.
type UTXOView interface {
	GetUTXO(transactionID string, outputIndex uint32) (utxo *UTXO, found bool, err error)
}

// SignatureVerifier checks that signature authorizes payload on behalf of
// identity.
//
// A malformed signature is reported as (false, nil). An error is returned
// only when the verifier can't operate at all, e.g. when identity isn't a
// valid public key.
type SignatureVerifier interface {
	Verify(payload []byte, signature []byte, identity string) (bool, error)
}
