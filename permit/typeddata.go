// Package permit implements structured-data hashing and signer recovery for
// off-chain signed approvals. It is isolated from the ledger: the keeper
// supplies the current nonce and owns nonce/allowance state, this package
// only produces digests and recovers signers.
package permit

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

var (
	domainTypeHash = crypto.Keccak256Hash([]byte("EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)"))
	permitTypeHash = crypto.Keccak256Hash([]byte("Permit(address owner,address spender,uint256 value,uint256 nonce,uint256 deadline)"))
)

// DomainSeparator derives the typed-data domain hash from exactly
// {name, version, chainID, contract}. It is deterministically recomputable
// off-process from those four inputs and nothing else.
func DomainSeparator(name, version string, chainID *big.Int, contract common.Address) common.Hash {
	return crypto.Keccak256Hash(
		domainTypeHash.Bytes(),
		crypto.Keccak256([]byte(name)),
		crypto.Keccak256([]byte(version)),
		uintWord(new(uint256.Int).SetBytes(chainID.Bytes())),
		addressWord(contract),
	)
}

// PermitStructHash hashes the canonical permit struct
// {owner, spender, value, nonce, deadline}. value must fit in 256 bits,
// which math.Int guarantees.
func PermitStructHash(owner, spender common.Address, value math.Int, nonce, deadline uint64) common.Hash {
	return crypto.Keccak256Hash(
		permitTypeHash.Bytes(),
		addressWord(owner),
		addressWord(spender),
		uintWord(new(uint256.Int).SetBytes(value.BigInt().Bytes())),
		uintWord(new(uint256.Int).SetUint64(nonce)),
		uintWord(new(uint256.Int).SetUint64(deadline)),
	)
}

// Digest combines the domain separator and a struct hash into the final
// signable digest (prefixed 0x19 0x01 per the typed-data encoding).
func Digest(domainSeparator, structHash common.Hash) common.Hash {
	return crypto.Keccak256Hash(
		[]byte{0x19, 0x01},
		domainSeparator.Bytes(),
		structHash.Bytes(),
	)
}

// uintWord encodes a uint256 as a 32-byte big-endian word.
func uintWord(v *uint256.Int) []byte {
	word := v.Bytes32()
	return word[:]
}

// addressWord left-pads a 20-byte address to a 32-byte word.
func addressWord(addr common.Address) []byte {
	return common.LeftPadBytes(addr.Bytes(), 32)
}
