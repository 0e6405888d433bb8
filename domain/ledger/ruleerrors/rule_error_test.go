package ruleerrors

import (
	"math/big"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{UTXONotFound, "UTXO_NOT_FOUND"},
		{DoubleSpending, "DOUBLE_SPENDING"},
		{InvalidSignature, "INVALID_SIGNATURE"},
		{NegativeAmount, "NEGATIVE_AMOUNT"},
		{AmountMismatch, "AMOUNT_MISMATCH"},
		{0xffff, "Unknown ErrorKind (65535)"},
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result, test.want)
		}
	}
}

func TestZeroResultIsValid(t *testing.T) {
	result := &ValidationResult{}
	if !result.Valid() {
		t.Fatalf("an empty result must be valid")
	}
	if result.Err() != nil {
		t.Fatalf("Err of a valid result must be nil, got %s", result.Err())
	}
	if len(result.Errors()) != 0 {
		t.Fatalf("expected no errors")
	}
}

func TestValidationResultMessages(t *testing.T) {
	result := &ValidationResult{}
	result.AddUTXONotFound("tx-1:0")
	result.AddDoubleSpending("tx-1:1")
	result.AddInvalidSignature("tx-1:1")
	result.AddNegativeAmount(-5)
	result.AddAmountMismatch(big.NewInt(100), big.NewInt(90))

	if result.Valid() {
		t.Fatalf("a result with errors must not be valid")
	}

	expected := []ValidationError{
		{UTXONotFound, "UTXO not found: tx-1:0"},
		{DoubleSpending, "Double spend detected: tx-1:1"},
		{InvalidSignature, "Invalid signature for UTXO: tx-1:1"},
		{NegativeAmount, "Invalid output amount: -5"},
		{AmountMismatch, "Input sum (100) does not match output sum (90)"},
	}
	errs := result.Errors()
	if len(errs) != len(expected) {
		t.Fatalf("expected %d errors, got %d", len(expected), len(errs))
	}
	for i := range expected {
		if errs[i] != expected[i] {
			t.Errorf("error #%d: expected %+v, got %+v", i, expected[i], errs[i])
		}
	}

	errs[0].Message = "changed"
	if result.Errors()[0].Message == "changed" {
		t.Fatalf("Errors must return a copy")
	}
}

func TestValidationErrorIs(t *testing.T) {
	result := &ValidationResult{}
	result.AddDoubleSpending("tx-1:1")
	result.AddNegativeAmount(0)

	err := result.Err()
	if !errors.Is(err, ErrDoubleSpending) {
		t.Fatalf("expected err to match ErrDoubleSpending: %s", err)
	}
	if errors.Is(err, ErrAmountMismatch) {
		t.Fatalf("err should not match ErrAmountMismatch: %s", err)
	}
	if !strings.Contains(err.Error(), "NEGATIVE_AMOUNT: Invalid output amount: 0") {
		t.Fatalf("expected every error in the message, got: %s", err)
	}

	var validationErr ValidationError
	if !errors.As(err, &validationErr) || validationErr.Kind != DoubleSpending {
		t.Fatalf("expected errors.As to find the first ValidationError")
	}

	if !result.Has(NegativeAmount) || result.Has(UTXONotFound) || result.Count(DoubleSpending) != 1 {
		t.Fatalf("unexpected Has/Count results")
	}
}
