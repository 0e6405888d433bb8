package externalapi

import "testing"

func initTestTransaction() *Transaction {
	return &Transaction{
		ID: "tx-2",
		Inputs: []*TransactionInput{
			{UTXOID: UTXOID{TransactionID: "tx-1", OutputIndex: 0}, Owner: "alice", Signature: []byte{1, 2, 3}},
			{UTXOID: UTXOID{TransactionID: "tx-1", OutputIndex: 1}, Owner: "alice"},
		},
		Outputs: []*TransactionOutput{
			{Recipient: "bob", Amount: 70},
			{Recipient: "alice", Amount: 30},
		},
		Timestamp: 1700000000000,
	}
}

func TestTransactionCloneIsDeep(t *testing.T) {
	tx := initTestTransaction()
	txClone := tx.Clone()
	if !tx.Equal(txClone) {
		t.Fatalf("clone is not equal to the original")
	}

	txClone.Inputs[0].Signature[0] = 9
	txClone.Outputs[1].Amount = 31
	txClone.Inputs[1].Owner = "mallory"
	if tx.Inputs[0].Signature[0] != 1 || tx.Outputs[1].Amount != 30 || tx.Inputs[1].Owner != "alice" {
		t.Fatalf("mutating the clone changed the original")
	}
	if tx.Equal(txClone) {
		t.Fatalf("mutated clone is still equal to the original")
	}
}

func TestTransactionEqual(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(tx *Transaction)
		expected bool
	}{
		{"identical", func(tx *Transaction) {}, true},
		{"different ID", func(tx *Transaction) { tx.ID = "tx-3" }, false},
		{"different timestamp", func(tx *Transaction) { tx.Timestamp++ }, false},
		{"missing input", func(tx *Transaction) { tx.Inputs = tx.Inputs[:1] }, false},
		{"different output index", func(tx *Transaction) { tx.Inputs[1].UTXOID.OutputIndex = 5 }, false},
		{"nil vs empty signature", func(tx *Transaction) { tx.Inputs[1].Signature = []byte{} }, true},
		{"different recipient", func(tx *Transaction) { tx.Outputs[0].Recipient = "carol" }, false},
	}
	for _, test := range tests {
		other := initTestTransaction()
		test.mutate(other)
		if initTestTransaction().Equal(other) != test.expected {
			t.Errorf("%s: expected Equal to return %t", test.name, test.expected)
		}
	}

	var nilTx *Transaction
	if !nilTx.Equal(nil) || nilTx.Equal(initTestTransaction()) {
		t.Fatalf("unexpected nil equality")
	}
}

func TestUTXOIDString(t *testing.T) {
	id := UTXOID{TransactionID: "abc", OutputIndex: 7}
	if id.String() != "abc:7" {
		t.Fatalf("unexpected key %s", id)
	}
}
