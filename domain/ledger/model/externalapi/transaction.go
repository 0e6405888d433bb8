package externalapi

import (
	"bytes"
	"fmt"
)

// Transaction represents a transfer of value from previously created outputs
// to new ones.
type Transaction struct {
	ID        string
	Inputs    []*TransactionInput
	Outputs   []*TransactionOutput
	Timestamp int64
}

// TransactionInput spends the output referenced by UTXOID. Owner is the
// identity the input claims to spend for, Signature authorizes the
// transaction's signing payload.
type TransactionInput struct {
	UTXOID    UTXOID
	Owner     string
	Signature []byte
}

// TransactionOutput assigns Amount to Recipient. Only strictly positive
// amounts are valid.
type TransactionOutput struct {
	Recipient string
	Amount    int64
}

// UTXOID references the output at OutputIndex of the transaction
// TransactionID.
type UTXOID struct {
	TransactionID string
	OutputIndex   uint32
}

// String returns the "txId:outputIndex" key of the UTXOID.
func (id UTXOID) String() string {
	return fmt.Sprintf("%s:%d", id.TransactionID, id.OutputIndex)
}

// Clone returns a deep copy of the transaction.
func (tx *Transaction) Clone() *Transaction {
	if tx == nil {
		return nil
	}

	inputsClone := make([]*TransactionInput, len(tx.Inputs))
	for i, input := range tx.Inputs {
		inputsClone[i] = input.Clone()
	}

	outputsClone := make([]*TransactionOutput, len(tx.Outputs))
	for i, output := range tx.Outputs {
		outputsClone[i] = output.Clone()
	}

	return &Transaction{
		ID:        tx.ID,
		Inputs:    inputsClone,
		Outputs:   outputsClone,
		Timestamp: tx.Timestamp,
	}
}

// Equal returns whether tx equals to other.
func (tx *Transaction) Equal(other *Transaction) bool {
	if tx == nil || other == nil {
		return tx == other
	}

	if tx.ID != other.ID || tx.Timestamp != other.Timestamp {
		return false
	}

	if len(tx.Inputs) != len(other.Inputs) {
		return false
	}
	for i, input := range tx.Inputs {
		if !input.Equal(other.Inputs[i]) {
			return false
		}
	}

	if len(tx.Outputs) != len(other.Outputs) {
		return false
	}
	for i, output := range tx.Outputs {
		if !output.Equal(other.Outputs[i]) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the input.
func (input *TransactionInput) Clone() *TransactionInput {
	if input == nil {
		return nil
	}

	var signatureClone []byte
	if input.Signature != nil {
		signatureClone = make([]byte, len(input.Signature))
		copy(signatureClone, input.Signature)
	}

	return &TransactionInput{
		UTXOID:    input.UTXOID,
		Owner:     input.Owner,
		Signature: signatureClone,
	}
}

// Equal returns whether input equals to other.
func (input *TransactionInput) Equal(other *TransactionInput) bool {
	if input == nil || other == nil {
		return input == other
	}
	return input.UTXOID == other.UTXOID &&
		input.Owner == other.Owner &&
		bytes.Equal(input.Signature, other.Signature)
}

// Clone returns a copy of the output.
func (output *TransactionOutput) Clone() *TransactionOutput {
	if output == nil {
		return nil
	}
	outputClone := *output
	return &outputClone
}

// Equal returns whether output equals to other.
func (output *TransactionOutput) Equal(other *TransactionOutput) bool {
	if output == nil || other == nil {
		return output == other
	}
	return *output == *other
}
