package permit

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signature carries the components of a secp256k1 signature as produced by
// wallet signers: V is the recovery id offset by 27.
type Signature struct {
	V uint8
	R [32]byte
	S [32]byte
}

// SignatureFromBytes converts a 65-byte [R || S || recovery-id] signature,
// the layout produced by crypto.Sign, into its components.
func SignatureFromBytes(sig []byte) (Signature, error) {
	if len(sig) != crypto.SignatureLength {
		return Signature{}, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}
	out := Signature{V: sig[64] + 27}
	copy(out.R[:], sig[:32])
	copy(out.S[:], sig[32:64])
	return out, nil
}

// SignerRecoverer recovers the signing address from a digest and signature.
// It is pluggable so the ledger logic stays independent of the curve and
// encoding in use.
type SignerRecoverer interface {
	RecoverSigner(digest common.Hash, sig Signature) (common.Address, error)
}

// Secp256k1Recoverer recovers secp256k1 signers via public key recovery.
// Malleable (high-S) signatures are rejected.
type Secp256k1Recoverer struct{}

var _ SignerRecoverer = Secp256k1Recoverer{}

func (Secp256k1Recoverer) RecoverSigner(digest common.Hash, sig Signature) (common.Address, error) {
	if sig.V != 27 && sig.V != 28 {
		return common.Address{}, fmt.Errorf("invalid recovery id %d", sig.V)
	}
	v := sig.V - 27

	r := new(big.Int).SetBytes(sig.R[:])
	s := new(big.Int).SetBytes(sig.S[:])
	if !crypto.ValidateSignatureValues(v, r, s, true) {
		return common.Address{}, fmt.Errorf("malformed signature values")
	}

	raw := make([]byte, crypto.SignatureLength)
	copy(raw[:32], sig.R[:])
	copy(raw[32:64], sig.S[:])
	raw[64] = v

	pub, err := crypto.Ecrecover(digest.Bytes(), raw)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}

	return common.BytesToAddress(crypto.Keccak256(pub[1:])[12:]), nil
}
