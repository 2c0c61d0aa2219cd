package core

import (
	"bytes"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/actuallyachraf/gofri/internal/gofri/utils"
)

// Merkle is a power-of-two binary Merkle tree used as the vector-commitment
// scheme backing FRI's round codewords. It commits to a slice of leaves by
// recursively splitting it in half, authenticates a single leaf with the
// sibling-hash path from leaf to root, and verifies a path by folding the
// leaf hash upward, choosing concatenation order from the low bit of a
// shifting index.
type Merkle struct{}

func hashLeaf(data []byte) []byte {
	digest := blake2b.Sum256(data)
	return digest[:]
}

func hashNode(left, right []byte) []byte {
	combined := make([]byte, 0, len(left)+len(right))
	combined = append(combined, left...)
	combined = append(combined, right...)
	digest := blake2b.Sum256(combined)
	return digest[:]
}

// commitHashed recursively folds a slice of already-hashed leaves into a
// single root.
func commitHashed(leaves [][]byte) []byte {
	if len(leaves) == 1 {
		return leaves[0]
	}
	half := len(leaves) / 2
	return hashNode(commitHashed(leaves[:half]), commitHashed(leaves[half:]))
}

// openHashed recursively computes the authentication path for index within
// an already-hashed leaf slice.
func openHashed(index int, leaves [][]byte) [][]byte {
	if len(leaves) == 2 {
		return [][]byte{leaves[1-index]}
	}
	half := len(leaves) / 2
	if index < half {
		return append(openHashed(index, leaves[:half]), commitHashed(leaves[half:]))
	}
	return append(openHashed(index-half, leaves[half:]), commitHashed(leaves[:half]))
}

// Commit hashes every leaf and folds the resulting digests into a single
// Merkle root. leaves must be a non-empty, power-of-two-length slice.
func (Merkle) Commit(leaves [][]byte) ([]byte, error) {
	if len(leaves) == 0 || !utils.IsPowerOfTwo(len(leaves)) {
		return nil, fmt.Errorf("%w: leaves must have power-of-two length", ErrBadParameter)
	}
	hashed := make([][]byte, len(leaves))
	for i, leaf := range leaves {
		hashed[i] = hashLeaf(leaf)
	}
	return commitHashed(hashed), nil
}

// Open returns the authentication path for leaves[index]: the sequence of
// sibling hashes from leaf level to just below the root.
func (Merkle) Open(index int, leaves [][]byte) ([][]byte, error) {
	if len(leaves) == 0 || !utils.IsPowerOfTwo(len(leaves)) {
		return nil, fmt.Errorf("%w: leaves must have power-of-two length", ErrBadParameter)
	}
	if index < 0 || index >= len(leaves) {
		return nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrBadParameter, index, len(leaves))
	}
	hashed := make([][]byte, len(leaves))
	for i, leaf := range leaves {
		hashed[i] = hashLeaf(leaf)
	}
	return openHashed(index, hashed), nil
}

// Verify reports whether leaf is the committed value at index under root,
// given its authentication path. len(path) fixes the tree's depth, so index
// must lie in [0, 2^len(path)).
func (Merkle) Verify(root []byte, index int, path [][]byte, leaf []byte) (bool, error) {
	if len(path) == 0 {
		return false, fmt.Errorf("%w: path must be non-empty", ErrBadParameter)
	}
	if index < 0 || index >= (1<<len(path)) {
		return false, fmt.Errorf("%w: cannot verify invalid index", ErrBadParameter)
	}

	current := hashLeaf(leaf)
	for _, sibling := range path {
		if index%2 == 0 {
			current = hashNode(current, sibling)
		} else {
			current = hashNode(sibling, current)
		}
		index >>= 1
	}
	return bytes.Equal(root, current), nil
}
