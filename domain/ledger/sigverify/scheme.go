// Package sigverify implements the signature schemes inputs are authorized
// with. Every scheme signs the blake2b-256 digest of the transaction's
// signing payload, and identities are hex encoded public keys.
package sigverify

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
)

// Scheme selects a signature algorithm.
type Scheme string

// Supported schemes.
const (
	// SchnorrScheme is BIP-340 style Schnorr over secp256k1 with 32-byte
	// x-only public keys.
	SchnorrScheme Scheme = "schnorr"

	// ECDSAScheme is DER encoded ECDSA over secp256k1 with 33-byte
	// compressed public keys.
	ECDSAScheme Scheme = "ecdsa"
)

// ParseScheme returns the Scheme named s.
func ParseScheme(s string) (Scheme, error) {
	switch scheme := Scheme(strings.ToLower(s)); scheme {
	case SchnorrScheme, ECDSAScheme:
		return scheme, nil
	}
	return "", errors.Errorf("unknown signature scheme '%s'", s)
}

// Signer produces signatures accepted by the Verifier of the same scheme.
type Signer interface {
	Scheme() Scheme
	// Identity is the hex public key a UTXO has to be assigned to for
	// this signer's signatures to spend it.
	Identity() string
	PrivateKey() []byte
	Sign(payload []byte) ([]byte, error)
}

// NewVerifier returns the verifier of the given scheme.
func NewVerifier(scheme Scheme) (externalapi.SignatureVerifier, error) {
	switch scheme {
	case SchnorrScheme:
		return SchnorrVerifier{}, nil
	case ECDSAScheme:
		return ECDSAVerifier{}, nil
	}
	return nil, errors.Errorf("unknown signature scheme '%s'", scheme)
}

// NewSigner returns a signer of the given scheme for a 32-byte private key.
func NewSigner(scheme Scheme, privateKey []byte) (Signer, error) {
	switch scheme {
	case SchnorrScheme:
		return NewSchnorrSigner(privateKey)
	case ECDSAScheme:
		return NewECDSASigner(privateKey)
	}
	return nil, errors.Errorf("unknown signature scheme '%s'", scheme)
}

// GenerateSigner returns a signer of the given scheme for a fresh random
// private key.
func GenerateSigner(scheme Scheme) (Signer, error) {
	switch scheme {
	case SchnorrScheme:
		return GenerateSchnorrSigner()
	case ECDSAScheme:
		return GenerateECDSASigner()
	}
	return nil, errors.Errorf("unknown signature scheme '%s'", scheme)
}
