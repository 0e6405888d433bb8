package sigverify

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/domain/ledger/utils/txhashing"
)

// ECDSAVerifier verifies DER encoded ECDSA signatures over the signing hash.
type ECDSAVerifier struct{}

// Verify returns whether signature is a valid ECDSA signature by identity
// over the digest of payload. It fails with an error only if identity is not
// a valid public key.
func (ECDSAVerifier) Verify(payload []byte, signature []byte, identity string) (bool, error) {
	publicKeyBytes, err := hex.DecodeString(identity)
	if err != nil {
		return false, errors.Wrapf(err, "identity %s is not hex encoded", identity)
	}
	publicKey, err := btcec.ParsePubKey(publicKeyBytes)
	if err != nil {
		return false, errors.Wrapf(err, "identity %s is not a secp256k1 public key", identity)
	}

	ecdsaSignature, err := ecdsa.ParseDERSignature(signature)
	if err != nil {
		log.Tracef("Malformed ECDSA signature %x: %s", signature, err)
		return false, nil
	}

	hash := txhashing.HashPayload(payload)
	return ecdsaSignature.Verify(hash[:], publicKey), nil
}

// ECDSASigner signs with a secp256k1 private key.
type ECDSASigner struct {
	privateKey *btcec.PrivateKey
	identity   string
}

// NewECDSASigner returns a signer for the given 32-byte private key.
func NewECDSASigner(privateKey []byte) (*ECDSASigner, error) {
	if len(privateKey) != btcec.PrivKeyBytesLen {
		return nil, errors.Errorf("invalid ECDSA private key length %d, expected %d",
			len(privateKey), btcec.PrivKeyBytesLen)
	}
	key, publicKey := btcec.PrivKeyFromBytes(privateKey)
	if key.Key.IsZero() {
		return nil, errors.New("invalid ECDSA private key: zero scalar")
	}
	return &ECDSASigner{
		privateKey: key,
		identity:   hex.EncodeToString(publicKey.SerializeCompressed()),
	}, nil
}

// GenerateECDSASigner returns a signer for a fresh random private key.
func GenerateECDSASigner() (*ECDSASigner, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &ECDSASigner{
		privateKey: key,
		identity:   hex.EncodeToString(key.PubKey().SerializeCompressed()),
	}, nil
}

// Scheme returns ECDSAScheme.
func (s *ECDSASigner) Scheme() Scheme {
	return ECDSAScheme
}

// Identity returns the hex compressed public key.
func (s *ECDSASigner) Identity() string {
	return s.identity
}

// PrivateKey returns the serialized private key.
func (s *ECDSASigner) PrivateKey() []byte {
	return s.privateKey.Serialize()
}

// Sign returns the DER encoded ECDSA signature over the digest of payload.
func (s *ECDSASigner) Sign(payload []byte) ([]byte, error) {
	hash := txhashing.HashPayload(payload)
	return ecdsa.Sign(s.privateKey, hash[:]).Serialize(), nil
}
