package txhashing

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
)

func testTransaction() *externalapi.Transaction {
	return &externalapi.Transaction{
		ID: "t1",
		Inputs: []*externalapi.TransactionInput{
			{
				UTXOID:    externalapi.UTXOID{TransactionID: "t0", OutputIndex: 1},
				Owner:     "a",
				Signature: []byte{0xde, 0xad},
			},
		},
		Outputs: []*externalapi.TransactionOutput{
			{Recipient: "b", Amount: 100},
		},
		Timestamp: 2,
	}
}

func TestSigningPayloadLayout(t *testing.T) {
	payload, err := SigningPayload(testTransaction())
	if err != nil {
		t.Fatalf("SigningPayload: %s", err)
	}

	expected := "" +
		"0200000000000000" + "7431" + // id "t1"
		"0100000000000000" + // one input
		"0200000000000000" + "7430" + // "t0"
		"01000000" + // output index 1
		"0100000000000000" + "61" + // owner "a"
		"0100000000000000" + // one output
		"0100000000000000" + "62" + // recipient "b"
		"6400000000000000" + // amount 100
		"0200000000000000" // timestamp 2
	if hex.EncodeToString(payload) != expected {
		t.Fatalf("unexpected payload\n got: %x\nwant: %s", payload, expected)
	}
}

func TestSigningPayloadExcludesSignatures(t *testing.T) {
	tx := testTransaction()
	payload, err := SigningPayload(tx)
	if err != nil {
		t.Fatalf("SigningPayload: %s", err)
	}

	tx.Inputs[0].Signature = []byte{1, 2, 3, 4, 5}
	payloadWithOtherSignature, err := SigningPayload(tx)
	if err != nil {
		t.Fatalf("SigningPayload: %s", err)
	}
	if !bytes.Equal(payload, payloadWithOtherSignature) {
		t.Fatalf("the payload depends on the signature")
	}

	again, err := SigningPayload(testTransaction())
	if err != nil {
		t.Fatalf("SigningPayload: %s", err)
	}
	if !bytes.Equal(payload, again) {
		t.Fatalf("the payload is not deterministic")
	}
}

func TestSigningPayloadCoversContent(t *testing.T) {
	base, err := SigningHash(testTransaction())
	if err != nil {
		t.Fatalf("SigningHash: %s", err)
	}

	tests := []struct {
		name   string
		mutate func(tx *externalapi.Transaction)
	}{
		{"id", func(tx *externalapi.Transaction) { tx.ID = "t2" }},
		{"input transaction id", func(tx *externalapi.Transaction) { tx.Inputs[0].UTXOID.TransactionID = "t9" }},
		{"input output index", func(tx *externalapi.Transaction) { tx.Inputs[0].UTXOID.OutputIndex = 2 }},
		{"owner", func(tx *externalapi.Transaction) { tx.Inputs[0].Owner = "c" }},
		{"recipient", func(tx *externalapi.Transaction) { tx.Outputs[0].Recipient = "c" }},
		{"amount", func(tx *externalapi.Transaction) { tx.Outputs[0].Amount = 99 }},
		{"timestamp", func(tx *externalapi.Transaction) { tx.Timestamp = 3 }},
		{"extra output", func(tx *externalapi.Transaction) {
			tx.Outputs = append(tx.Outputs, &externalapi.TransactionOutput{Recipient: "b", Amount: 1})
		}},
		// String boundaries are length prefixed, so moving a byte between
		// adjacent fields changes the payload.
		{"field boundary", func(tx *externalapi.Transaction) {
			tx.ID = "t"
			tx.Inputs[0].UTXOID.TransactionID = "1t0"
		}},
	}
	for _, test := range tests {
		tx := testTransaction()
		test.mutate(tx)
		hash, err := SigningHash(tx)
		if err != nil {
			t.Fatalf("%s: SigningHash: %s", test.name, err)
		}
		if *hash == *base {
			t.Errorf("%s: changing the field did not change the signing hash", test.name)
		}
	}
}

func TestSigningPayloadNilParts(t *testing.T) {
	_, err := SigningPayload(nil)
	if err == nil {
		t.Fatalf("expected an error for a nil transaction")
	}

	tx := testTransaction()
	tx.Outputs = append(tx.Outputs, nil)
	_, err = SigningPayload(tx)
	if err == nil {
		t.Fatalf("expected an error for a nil output")
	}
}
