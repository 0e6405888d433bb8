package sigverify

import (
	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
	"github.com/utxogate/utxogate/domain/ledger/utils/txhashing"
)

// SignTransaction signs, in place, every input of tx whose Owner is the
// signer's identity and returns how many inputs were signed. The payload
// excludes signatures, so inputs can be signed by several signers in any
// order.
func SignTransaction(tx *externalapi.Transaction, signer Signer) (int, error) {
	payload, err := txhashing.SigningPayload(tx)
	if err != nil {
		return 0, err
	}

	var signature []byte
	signed := 0
	for _, input := range tx.Inputs {
		if input.Owner != signer.Identity() {
			continue
		}
		if signature == nil {
			signature, err = signer.Sign(payload)
			if err != nil {
				return signed, err
			}
		}
		input.Signature = append([]byte(nil), signature...)
		signed++
	}
	log.Debugf("Signed %d inputs of transaction %s", signed, tx.ID)
	return signed, nil
}
