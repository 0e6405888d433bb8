package txencoding

import (
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
)

func testTransaction() *externalapi.Transaction {
	return &externalapi.Transaction{
		ID: "tx-1",
		Inputs: []*externalapi.TransactionInput{
			{
				UTXOID:    externalapi.UTXOID{TransactionID: "genesis", OutputIndex: 3},
				Owner:     "alice",
				Signature: []byte{0xde, 0xad, 0xbe, 0xef},
			},
			{
				UTXOID: externalapi.UTXOID{TransactionID: "genesis", OutputIndex: 4},
				Owner:  "bob",
			},
		},
		Outputs: []*externalapi.TransactionOutput{
			{Recipient: "carol", Amount: 90},
			{Recipient: "dave", Amount: -1},
		},
		Timestamp: 1700000000000,
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	for _, format := range []Format{JSONFormat, CBORFormat} {
		tx := testTransaction()
		data, err := EncodeTransaction(format, tx)
		if err != nil {
			t.Fatalf("%s: EncodeTransaction: %s", format, err)
		}
		decoded, err := DecodeTransaction(format, data)
		if err != nil {
			t.Fatalf("%s: DecodeTransaction: %s", format, err)
		}
		if !decoded.Equal(tx) {
			t.Fatalf("%s: round trip changed the transaction:\n%s\n%s", format, spew.Sdump(tx), spew.Sdump(decoded))
		}

		again, err := EncodeTransaction(format, decoded)
		if err != nil {
			t.Fatalf("%s: EncodeTransaction: %s", format, err)
		}
		if !reflect.DeepEqual(data, again) {
			t.Fatalf("%s: encoding is not deterministic", format)
		}
	}
}

func TestDecodeTransactionJSON(t *testing.T) {
	data := []byte(`{
		"id": "tx-1",
		"inputs": [{"utxoId": {"txId": "genesis", "outputIndex": 3}, "owner": "alice", "signature": "DEADbeef"}],
		"outputs": [{"recipient": "carol", "amount": 90}],
		"timestamp": 5
	}`)
	tx, err := DecodeTransaction(JSONFormat, data)
	if err != nil {
		t.Fatalf("DecodeTransaction: %s", err)
	}
	expected := &externalapi.Transaction{
		ID: "tx-1",
		Inputs: []*externalapi.TransactionInput{{
			UTXOID:    externalapi.UTXOID{TransactionID: "genesis", OutputIndex: 3},
			Owner:     "alice",
			Signature: []byte{0xde, 0xad, 0xbe, 0xef},
		}},
		Outputs:   []*externalapi.TransactionOutput{{Recipient: "carol", Amount: 90}},
		Timestamp: 5,
	}
	if !tx.Equal(expected) {
		t.Fatalf("unexpected transaction %s", spew.Sdump(tx))
	}
}

func TestDecodeTransactionErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `tx-1`},
		{"unknown field", `{"id": "tx-1", "fee": 3}`},
		{"bad signature", `{"id": "tx-1", "inputs": [{"utxoId": {"txId": "a", "outputIndex": 0}, "owner": "x", "signature": "zz"}]}`},
		{"negative index", `{"id": "tx-1", "inputs": [{"utxoId": {"txId": "a", "outputIndex": -1}, "owner": "x"}]}`},
		{"amount too large", `{"id": "tx-1", "outputs": [{"recipient": "x", "amount": 9223372036854775808}]}`},
		{"trailing data", `{"id": "tx-1"} {"id": "tx-2"}`},
	}
	for _, test := range tests {
		_, err := DecodeTransaction(JSONFormat, []byte(test.data))
		if err == nil {
			t.Fatalf("%s: expected an error", test.name)
		}
	}

	_, err := DecodeTransaction(CBORFormat, []byte{0xff, 0x00})
	if err == nil {
		t.Fatalf("expected an error for malformed CBOR")
	}
}

func TestEncodeTransactionNilParts(t *testing.T) {
	_, err := EncodeTransaction(JSONFormat, nil)
	if err == nil {
		t.Fatalf("expected an error for a nil transaction")
	}
	tx := testTransaction()
	tx.Outputs[1] = nil
	_, err = EncodeTransaction(CBORFormat, tx)
	if err == nil {
		t.Fatalf("expected an error for a nil output")
	}
}

func TestUTXOSetRoundTrip(t *testing.T) {
	pairs := []*externalapi.UTXOIDAndUTXOPair{
		{UTXOID: externalapi.UTXOID{TransactionID: "b", OutputIndex: 1}, UTXO: &externalapi.UTXO{Recipient: "alice", Amount: 10}},
		{UTXOID: externalapi.UTXOID{TransactionID: "a", OutputIndex: 0}, UTXO: &externalapi.UTXO{Recipient: "bob", Amount: 20}},
	}
	for _, format := range []Format{JSONFormat, CBORFormat} {
		data, err := EncodeUTXOSet(format, pairs)
		if err != nil {
			t.Fatalf("%s: EncodeUTXOSet: %s", format, err)
		}
		decoded, err := DecodeUTXOSet(format, data)
		if err != nil {
			t.Fatalf("%s: DecodeUTXOSet: %s", format, err)
		}
		if !reflect.DeepEqual(decoded, pairs) {
			t.Fatalf("%s: round trip changed the UTXO set:\n%s", format, spew.Sdump(decoded))
		}
	}

	_, err := EncodeUTXOSet(JSONFormat, []*externalapi.UTXOIDAndUTXOPair{{}})
	if err == nil {
		t.Fatalf("expected an error for a pair without a UTXO")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in          string
		expected    Format
		expectError bool
	}{
		{"json", JSONFormat, false},
		{"CBOR", CBORFormat, false},
		{"xml", "", true},
		{"", "", true},
	}
	for _, test := range tests {
		format, err := ParseFormat(test.in)
		if (err != nil) != test.expectError {
			t.Fatalf("ParseFormat(%q): unexpected error state %v", test.in, err)
		}
		if format != test.expected {
			t.Fatalf("ParseFormat(%q): expected %q, got %q", test.in, test.expected, format)
		}
		if err != nil && !strings.Contains(err.Error(), "unknown format") {
			t.Fatalf("ParseFormat(%q): unexpected error %s", test.in, err)
		}
	}
}
