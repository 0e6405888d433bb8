package sigverify

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/kaspanet/go-secp256k1"
	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/domain/ledger/utils/txhashing"
)

// SchnorrVerifier verifies Schnorr signatures over the signing hash.
type SchnorrVerifier struct{}

// Verify returns whether signature is a valid Schnorr signature by identity
// over the digest of payload. It fails with an error only if identity is not
// a valid x-only public key.
func (SchnorrVerifier) Verify(payload []byte, signature []byte, identity string) (bool, error) {
	publicKeyBytes, err := hex.DecodeString(identity)
	if err != nil {
		return false, errors.Wrapf(err, "identity %s is not hex encoded", identity)
	}
	publicKey, err := secp256k1.DeserializeSchnorrPubKey(publicKeyBytes)
	if err != nil {
		return false, errors.Wrapf(err, "identity %s is not a Schnorr public key", identity)
	}

	schnorrSignature, err := secp256k1.DeserializeSchnorrSignatureFromSlice(signature)
	if err != nil {
		log.Tracef("Malformed Schnorr signature %x: %s", signature, err)
		return false, nil
	}

	hash := secp256k1.Hash(txhashing.HashPayload(payload))
	return publicKey.SchnorrVerify(&hash, schnorrSignature), nil
}

// SchnorrSigner signs with a secp256k1 Schnorr key pair.
type SchnorrSigner struct {
	keyPair    *secp256k1.SchnorrKeyPair
	privateKey []byte
	identity   string
}

// NewSchnorrSigner returns a signer for the given 32-byte private key.
func NewSchnorrSigner(privateKey []byte) (*SchnorrSigner, error) {
	keyPair, err := secp256k1.DeserializeSchnorrPrivateKeyFromSlice(privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid Schnorr private key")
	}
	publicKey, err := keyPair.SchnorrPublicKey()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	serializedPublicKey, err := publicKey.Serialize()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &SchnorrSigner{
		keyPair:    keyPair,
		privateKey: append([]byte(nil), privateKey...),
		identity:   hex.EncodeToString(serializedPublicKey[:]),
	}, nil
}

// GenerateSchnorrSigner returns a signer for a fresh random private key.
func GenerateSchnorrSigner() (*SchnorrSigner, error) {
	privateKey := make([]byte, 32)
	for {
		_, err := rand.Read(privateKey)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		signer, err := NewSchnorrSigner(privateKey)
		if err == nil {
			return signer, nil
		}
		// Out of range scalars are astronomically rare; draw again.
	}
}

// Scheme returns SchnorrScheme.
func (s *SchnorrSigner) Scheme() Scheme {
	return SchnorrScheme
}

// Identity returns the hex x-only public key.
func (s *SchnorrSigner) Identity() string {
	return s.identity
}

// PrivateKey returns a copy of the private key.
func (s *SchnorrSigner) PrivateKey() []byte {
	return append([]byte(nil), s.privateKey...)
}

// Sign returns the 64-byte Schnorr signature over the digest of payload.
func (s *SchnorrSigner) Sign(payload []byte) ([]byte, error) {
	hash := secp256k1.Hash(txhashing.HashPayload(payload))
	signature, err := s.keyPair.SchnorrSign(&hash)
	if err != nil {
		return nil, errors.Errorf("cannot sign payload: %s", err)
	}
	return signature.Serialize()[:], nil
}
