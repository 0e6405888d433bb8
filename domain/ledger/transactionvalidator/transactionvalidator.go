package transactionvalidator

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
	"github.com/utxogate/utxogate/domain/ledger/ruleerrors"
	"github.com/utxogate/utxogate/domain/ledger/utils/txhashing"
	"github.com/utxogate/utxogate/infrastructure/logger"
)

// TransactionValidator checks transactions against a fixed UTXO view. It
// holds no state besides its collaborators and never mutates them.
type TransactionValidator struct {
	utxoView externalapi.UTXOView
	verifier externalapi.SignatureVerifier
}

// New instantiates a TransactionValidator over utxoView. The view must not
// change while a validation is running.
func New(utxoView externalapi.UTXOView, verifier externalapi.SignatureVerifier) *TransactionValidator {
	return &TransactionValidator{
		utxoView: utxoView,
		verifier: verifier,
	}
}

// ValidateTransaction runs every check on tx and returns all the rule
// violations found, in order: per input UTXO_NOT_FOUND, DOUBLE_SPENDING and
// INVALID_SIGNATURE, then per output NEGATIVE_AMOUNT, then AMOUNT_MISMATCH.
//
// The returned error is not a rule violation: it means the view or the
// verifier failed and the transaction could not be validated at all.
func (v *TransactionValidator) ValidateTransaction(tx *externalapi.Transaction) (*ruleerrors.ValidationResult, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "ValidateTransaction")
	defer onEnd()

	payload, err := txhashing.SigningPayload(tx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive the signing payload")
	}

	result := &ruleerrors.ValidationResult{}

	totalInput, err := v.checkTransactionInputs(tx, payload, result)
	if err != nil {
		return nil, err
	}

	totalOutput := v.checkTransactionOutputAmounts(tx, result)

	if totalInput.Cmp(totalOutput) != 0 {
		result.AddAmountMismatch(totalInput, totalOutput)
	}

	if !result.Valid() {
		log.Debugf("Transaction %s is invalid: %s", tx.ID, result.Err())
	}
	return result, nil
}

// checkTransactionInputs resolves every input, records missing, duplicate
// and unauthorized ones, and returns the sum of the resolved UTXO amounts.
//
// A duplicate input is still verified and its amount still counted: the
// duplication is reported on its own and doesn't change the balance
// accounting.
func (v *TransactionValidator) checkTransactionInputs(tx *externalapi.Transaction, payload []byte,
	result *ruleerrors.ValidationResult) (*big.Int, error) {

	totalInput := new(big.Int)
	seenUTXOKeys := make(map[string]struct{}, len(tx.Inputs))

	for _, input := range tx.Inputs {
		utxoID := input.UTXOID
		utxoKey := utxoID.String()

		utxo, found, err := v.utxoView.GetUTXO(utxoID.TransactionID, utxoID.OutputIndex)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to look up UTXO %s", utxoKey)
		}
		if !found {
			result.AddUTXONotFound(utxoKey)
			continue
		}

		if _, seen := seenUTXOKeys[utxoKey]; seen {
			result.AddDoubleSpending(utxoKey)
		}
		seenUTXOKeys[utxoKey] = struct{}{}

		isValid, err := v.verifier.Verify(payload, input.Signature, utxo.Recipient)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to verify the signature of UTXO %s", utxoKey)
		}
		if !isValid {
			result.AddInvalidSignature(utxoKey)
		}

		totalInput.Add(totalInput, big.NewInt(utxo.Amount))
	}

	return totalInput, nil
}

func (v *TransactionValidator) checkTransactionOutputAmounts(tx *externalapi.Transaction,
	result *ruleerrors.ValidationResult) *big.Int {

	totalOutput := new(big.Int)
	for _, output := range tx.Outputs {
		totalOutput.Add(totalOutput, big.NewInt(output.Amount))
		if output.Amount <= 0 {
			result.AddNegativeAmount(output.Amount)
		}
	}
	return totalOutput
}
