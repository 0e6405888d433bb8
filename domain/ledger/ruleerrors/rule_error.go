package ruleerrors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrorKind identifies the rule a transaction violated.
type ErrorKind int

// These constants are used to identify a specific ValidationError.
const (
	// UTXONotFound indicates an input references an output that doesn't
	// exist in the UTXO view, either because it was never created or
	// because it was already spent.
	UTXONotFound ErrorKind = iota

	// DoubleSpending indicates a transaction references the same output
	// more than once.
	DoubleSpending

	// InvalidSignature indicates an input's signature does not authorize
	// the transaction on behalf of the referenced output's recipient.
	InvalidSignature

	// NegativeAmount indicates an output amount is zero or negative.
	NegativeAmount

	// AmountMismatch indicates the sum of the inputs differs from the sum
	// of the outputs.
	AmountMismatch
)

var errorKindStrings = map[ErrorKind]string{
	UTXONotFound:     "UTXO_NOT_FOUND",
	DoubleSpending:   "DOUBLE_SPENDING",
	InvalidSignature: "INVALID_SIGNATURE",
	NegativeAmount:   "NEGATIVE_AMOUNT",
	AmountMismatch:   "AMOUNT_MISMATCH",
}

// String returns the ErrorKind as a human-readable name.
func (k ErrorKind) String() string {
	if s, ok := errorKindStrings[k]; ok {
		return s
	}
	return fmt.Sprintf("Unknown ErrorKind (%d)", int(k))
}

// Sentinels to match a ValidationError by kind with errors.Is.
var (
	ErrUTXONotFound     = ValidationError{Kind: UTXONotFound}
	ErrDoubleSpending   = ValidationError{Kind: DoubleSpending}
	ErrInvalidSignature = ValidationError{Kind: InvalidSignature}
	ErrNegativeAmount   = ValidationError{Kind: NegativeAmount}
	ErrAmountMismatch   = ValidationError{Kind: AmountMismatch}
)

// ValidationError identifies a rule violation found while validating a
// transaction. The message carries the offending UTXO key, amount or totals.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

// Error satisfies the error interface and prints human-readable errors.
func (e ValidationError) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// Is reports whether target is a ValidationError of the same kind, so
// errors.Is(err, ErrDoubleSpending) works regardless of the message.
func (e ValidationError) Is(target error) bool {
	var other ValidationError
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

func newValidationError(kind ErrorKind, format string, args ...interface{}) ValidationError {
	return ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ValidationResult holds every ValidationError found in a transaction, in
// the order they were found. The zero value is a valid result with no errors.
type ValidationResult struct {
	errors []ValidationError
}

// Valid returns true iff no errors were added.
func (r *ValidationResult) Valid() bool {
	return len(r.errors) == 0
}

// Errors returns a copy of the collected errors.
func (r *ValidationResult) Errors() []ValidationError {
	errorsCopy := make([]ValidationError, len(r.errors))
	copy(errorsCopy, r.errors)
	return errorsCopy
}

// Has returns whether the result contains an error of the given kind.
func (r *ValidationResult) Has(kind ErrorKind) bool {
	return r.Count(kind) > 0
}

// Count returns the number of errors of the given kind.
func (r *ValidationResult) Count(kind ErrorKind) int {
	count := 0
	for _, err := range r.errors {
		if err.Kind == kind {
			count++
		}
	}
	return count
}

// Err returns nil for a valid result. Otherwise it returns an error listing
// all the validation errors; errors.Is matches the first one's kind.
func (r *ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	if len(r.errors) == 1 {
		return errors.WithStack(r.errors[0])
	}
	messages := make([]string, len(r.errors))
	for i, err := range r.errors {
		messages[i] = err.Error()
	}
	return errors.Wrapf(r.errors[0], "%d validation errors: [%s]", len(r.errors), strings.Join(messages, "; "))
}

func (r *ValidationResult) add(err ValidationError) {
	r.errors = append(r.errors, err)
}

// AddUTXONotFound records an input referencing a missing UTXO.
func (r *ValidationResult) AddUTXONotFound(utxoKey string) {
	r.add(newValidationError(UTXONotFound, "UTXO not found: %s", utxoKey))
}

// AddDoubleSpending records a UTXO referenced more than once.
func (r *ValidationResult) AddDoubleSpending(utxoKey string) {
	r.add(newValidationError(DoubleSpending, "Double spend detected: %s", utxoKey))
}

// AddInvalidSignature records an input whose signature failed verification.
func (r *ValidationResult) AddInvalidSignature(utxoKey string) {
	r.add(newValidationError(InvalidSignature, "Invalid signature for UTXO: %s", utxoKey))
}

// AddNegativeAmount records an output with a non-positive amount.
func (r *ValidationResult) AddNegativeAmount(amount int64) {
	r.add(newValidationError(NegativeAmount, "Invalid output amount: %d", amount))
}

// AddAmountMismatch records unequal input and output totals. The totals are
// passed as fmt.Stringer so arbitrary precision sums print exactly.
func (r *ValidationResult) AddAmountMismatch(totalInput, totalOutput fmt.Stringer) {
	r.add(newValidationError(AmountMismatch, "Input sum (%s) does not match output sum (%s)",
		totalInput, totalOutput))
}
