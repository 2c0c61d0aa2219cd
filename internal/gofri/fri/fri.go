// Package fri implements the Fast Reed-Solomon IOP of Proximity: a prover
// that folds a codeword down to a constant-size one while committing each
// round to a transcript, and a verifier that replays the transcript to
// check the codeword was close to a low-degree polynomial all along.
package fri

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/actuallyachraf/gofri/internal/gofri/core"
	"github.com/actuallyachraf/gofri/internal/gofri/transcript"
	"github.com/actuallyachraf/gofri/internal/gofri/utils"
)

// challengeBytes is the width of a derived challenge, matching the
// reference transcript's default digest length.
const challengeBytes = 32

// ErrLowDegreeFailure is the verifier's verdict error: it wraps a
// diagnostic identifying which check rejected the proof. verify returns
// (false, err) rather than panicking on a malformed proof.
var ErrLowDegreeFailure = fmt.Errorf("gofri: low degree failure")

// FRI holds one proof session's configuration: the coset domain (offset,
// omega, length) and the security parameters governing folding and
// queries.
type FRI struct {
	field               *core.Field
	offset              *core.FieldElement
	omega               *core.FieldElement
	domainLength        int
	expansionFactor     int
	numColinearityTests int
}

// New constructs an FRI session over the coset domain offset*<omega>,
// omega a primitive domainLength-th root of unity.
func New(offset, omega *core.FieldElement, domainLength, expansionFactor, numColinearityTests int) (*FRI, error) {
	if !offset.Field().Equals(omega.Field()) {
		return nil, fmt.Errorf("%w: offset and omega must share a field", core.ErrBadParameter)
	}
	if !utils.IsPowerOfTwo(domainLength) {
		return nil, fmt.Errorf("%w: domain length must be a power of two", core.ErrBadParameter)
	}
	if expansionFactor <= 0 {
		return nil, fmt.Errorf("%w: expansion factor must be positive", core.ErrBadParameter)
	}
	return &FRI{
		field:               offset.Field(),
		offset:              offset,
		omega:               omega,
		domainLength:        domainLength,
		expansionFactor:     expansionFactor,
		numColinearityTests: numColinearityTests,
	}, nil
}

// NumRounds returns the number of commit rounds: starting from the full
// domain length, count halvings while the codeword stays bigger than the
// expansion factor and the colinearity-test budget leaves room to fold
// again. The final round in the count still commits, but folds nothing.
func (f *FRI) NumRounds() int {
	length := f.domainLength
	rounds := 0
	for length > f.expansionFactor && 4*f.numColinearityTests < length {
		length /= 2
		rounds++
	}
	return rounds
}

// EvalDomain returns the coset domain { offset * omega^i : 0 <= i < N }.
func (f *FRI) EvalDomain() []*core.FieldElement {
	return evalDomain(f.offset, f.omega, f.domainLength)
}

func evalDomain(offset, omega *core.FieldElement, length int) []*core.FieldElement {
	domain := make([]*core.FieldElement, length)
	power := offset.Field().One()
	for i := 0; i < length; i++ {
		if i > 0 {
			power = power.Mul(omega)
		}
		domain[i] = offset.Mul(power)
	}
	return domain
}

func codewordLeaves(codeword []*core.FieldElement) [][]byte {
	leaves := make([][]byte, len(codeword))
	for i, c := range codeword {
		leaves[i] = c.Bytes()
	}
	return leaves
}

// Commit runs the per-round Merkle-commit / fold loop over codeword,
// pushing each round's root (and, for the last round, the folded-down
// codeword itself) onto t. It returns every round's codeword, the last
// entry being the final constant-size one.
func (f *FRI) Commit(codeword []*core.FieldElement, t *transcript.Transcript) ([][]*core.FieldElement, error) {
	one := f.field.One()
	two := f.field.NewElementFromInt64(2)
	twoInv, err := two.Inv()
	if err != nil {
		return nil, err
	}

	omega := f.omega
	offset := f.offset
	numRounds := f.NumRounds()
	var codewords [][]*core.FieldElement

	for round := 0; round < numRounds; round++ {
		n := len(codeword)
		omegaInv, err := omega.Inv()
		if err != nil {
			return nil, err
		}
		if !omega.ExpInt(uint64(n - 1)).Equal(omegaInv) {
			return nil, fmt.Errorf("%w: omega does not have the right order for round %d", core.ErrBadParameter, round)
		}

		merkle := core.Merkle{}
		root, err := merkle.Commit(codewordLeaves(codeword))
		if err != nil {
			return nil, err
		}
		t.PushRoot(root)

		if round == numRounds-1 {
			t.PushCodeword(codeword)
			codewords = append(codewords, codeword)
			break
		}

		codewords = append(codewords, codeword)

		alpha := f.field.Sample(t.ProverChallenge(challengeBytes))

		half := n / 2
		next := make([]*core.FieldElement, half)
		for i := 0; i < half; i++ {
			xi := offset.Mul(omega.ExpInt(uint64(i)))
			alphaOverXi, err := alpha.Div(xi)
			if err != nil {
				return nil, err
			}
			evenTerm := one.Add(alphaOverXi).Mul(codeword[i])
			oddTerm := one.Sub(alphaOverXi).Mul(codeword[half+i])
			next[i] = twoInv.Mul(evenTerm.Add(oddTerm))
		}
		codeword = next

		omega = omega.Mul(omega)
		offset = offset.Mul(offset)
	}

	return codewords, nil
}

// Query reveals, for each tested index, the colinearity triple (current[a],
// current[b], next[c]) and the three Merkle authentication paths backing
// it.
func (f *FRI) Query(current, next []*core.FieldElement, cIndices []int, t *transcript.Transcript) error {
	half := len(current) / 2
	aIndices := cIndices
	bIndices := make([]int, len(cIndices))
	for i, idx := range cIndices {
		bIndices[i] = idx + half
	}

	merkle := core.Merkle{}
	currentLeaves := codewordLeaves(current)
	nextLeaves := codewordLeaves(next)

	for s := 0; s < f.numColinearityTests; s++ {
		t.PushTriple(current[aIndices[s]], current[bIndices[s]], next[cIndices[s]])
	}
	for s := 0; s < f.numColinearityTests; s++ {
		pathA, err := merkle.Open(aIndices[s], currentLeaves)
		if err != nil {
			return err
		}
		pathB, err := merkle.Open(bIndices[s], currentLeaves)
		if err != nil {
			return err
		}
		pathC, err := merkle.Open(cIndices[s], nextLeaves)
		if err != nil {
			return err
		}
		t.PushPath(pathA)
		t.PushPath(pathB)
		t.PushPath(pathC)
	}
	return nil
}

func sampleIndex(seed []byte, counter uint64, size int) int {
	var counterBuf [8]byte
	binary.BigEndian.PutUint64(counterBuf[:], counter)
	digest := blake2b.Sum256(append(append([]byte{}, seed...), counterBuf[:]...))
	value := new(big.Int).SetBytes(digest[:])
	value.Mod(value, big.NewInt(int64(size)))
	return int(value.Int64())
}

// SampleIndices draws `number` distinct-on-the-reduced-projection indices
// in [0, size) from seed: repeatedly derive an index, keep it only if its
// image mod reducedSize hasn't been seen, until enough have been accepted.
// This prevents queries that collide after the codeword has been folded
// down to reducedSize.
func (f *FRI) SampleIndices(seed []byte, size, reducedSize, number int) ([]int, error) {
	if number > reducedSize {
		return nil, fmt.Errorf("%w: number of indices exceeds reduced size", core.ErrBadParameter)
	}
	var indices []int
	seen := map[int]bool{}
	var counter uint64
	for len(indices) < number {
		index := sampleIndex(seed, counter, size)
		counter++
		reduced := index % reducedSize
		if seen[reduced] {
			continue
		}
		seen[reduced] = true
		indices = append(indices, index)
	}
	return indices, nil
}

// Prove runs Commit over codeword, then samples and reveals the
// colinearity queries for every round, returning the top-level indices
// tested (so a caller can cross-check them against an outer polynomial
// commitment).
func (f *FRI) Prove(codeword []*core.FieldElement, t *transcript.Transcript) ([]int, error) {
	if len(codeword) != f.domainLength {
		return nil, fmt.Errorf("%w: initial domain length does not match codeword length", core.ErrBadParameter)
	}

	codewords, err := f.Commit(codeword, t)
	if err != nil {
		return nil, err
	}

	topLevelIndices, err := f.SampleIndices(
		t.ProverChallenge(challengeBytes),
		len(codewords[0]),
		len(codewords[len(codewords)-1]),
		f.numColinearityTests,
	)
	if err != nil {
		return nil, err
	}

	indices := append([]int(nil), topLevelIndices...)
	for i := 0; i < len(codewords)-1; i++ {
		half := len(codewords[i]) / 2
		for j, idx := range indices {
			indices[j] = idx % half
		}
		if err := f.Query(codewords[i], codewords[i+1], indices, t); err != nil {
			return nil, err
		}
	}
	return topLevelIndices, nil
}

// IndexedValue pairs a top-level domain index with the codeword value
// revealed there, letting a caller cross-check the first-round queries
// against an outer polynomial commitment.
type IndexedValue struct {
	Index int
	Value *core.FieldElement
}

// Verify replays t: it pulls roots and challenges in the same order the
// prover derived them, checks the final codeword is low-degree, and checks
// every round's colinearity triples and Merkle paths. It never panics on a
// malformed proof; a rejected proof returns (false, err) with err
// identifying the failing check. polynomialValues accumulates the
// first-round (index, value) pairs for the caller's own cross-check.
func (f *FRI) Verify(t *transcript.Transcript, polynomialValues *[]IndexedValue) (bool, error) {
	omega := f.omega
	offset := f.offset
	numRounds := f.NumRounds()

	roots := make([][]byte, numRounds)
	alphas := make([]*core.FieldElement, numRounds)
	for r := 0; r < numRounds; r++ {
		root, err := t.PullRoot()
		if err != nil {
			return false, err
		}
		roots[r] = root
		alphas[r] = f.field.Sample(t.VerifierChallenge(challengeBytes))
	}

	lastCodeword, err := t.PullCodeword(f.field)
	if err != nil {
		return false, err
	}

	merkle := core.Merkle{}
	lastRoot, err := merkle.Commit(codewordLeaves(lastCodeword))
	if err != nil {
		return false, err
	}
	if !bytes.Equal(lastRoot, roots[numRounds-1]) {
		return false, fmt.Errorf("%w: last codeword is not well formed", ErrLowDegreeFailure)
	}

	degreeBound := len(lastCodeword)/f.expansionFactor - 1
	lastOmega := omega
	lastOffset := offset
	for r := 0; r < numRounds-1; r++ {
		lastOmega = lastOmega.Mul(lastOmega)
		lastOffset = lastOffset.Mul(lastOffset)
	}
	lastOmegaInv, err := lastOmega.Inv()
	if err != nil {
		return false, err
	}
	if !lastOmegaInv.Equal(lastOmega.ExpInt(uint64(len(lastCodeword) - 1))) {
		return false, fmt.Errorf("%w: omega does not have the right order", core.ErrBadParameter)
	}

	lastDomain := evalDomain(lastOffset, lastOmega, len(lastCodeword))
	poly, err := core.InterpolateDomain(lastDomain, lastCodeword)
	if err != nil {
		return false, err
	}
	reevaluated := poly.EvaluateDomain(lastDomain)
	for i, v := range reevaluated {
		if !v.Equal(lastCodeword[i]) {
			return false, fmt.Errorf("%w: re-evaluated codeword does not match original", core.ErrBadParameter)
		}
	}
	if poly.Degree() > degreeBound {
		return false, fmt.Errorf("%w: last codeword does not correspond to a polynomial of low enough degree (observed %d, bound %d)", ErrLowDegreeFailure, poly.Degree(), degreeBound)
	}

	topLevelIndices, err := f.SampleIndices(
		t.VerifierChallenge(challengeBytes),
		f.domainLength>>1,
		f.domainLength>>uint(numRounds-1),
		f.numColinearityTests,
	)
	if err != nil {
		return false, err
	}

	for r := 0; r < numRounds-1; r++ {
		layerSize := f.domainLength >> uint(r+1)
		cIndices := make([]int, len(topLevelIndices))
		aIndices := make([]int, len(topLevelIndices))
		bIndices := make([]int, len(topLevelIndices))
		for i, idx := range topLevelIndices {
			cIndices[i] = idx % layerSize
			aIndices[i] = cIndices[i]
			bIndices[i] = cIndices[i] + layerSize
		}

		aa := make([]*core.FieldElement, f.numColinearityTests)
		bb := make([]*core.FieldElement, f.numColinearityTests)
		cc := make([]*core.FieldElement, f.numColinearityTests)
		for s := 0; s < f.numColinearityTests; s++ {
			ay, by, cy, err := t.PullTriple(f.field)
			if err != nil {
				return false, err
			}
			aa[s], bb[s], cc[s] = ay, by, cy

			if r == 0 && polynomialValues != nil {
				*polynomialValues = append(*polynomialValues,
					IndexedValue{Index: aIndices[s], Value: ay},
					IndexedValue{Index: bIndices[s], Value: by},
				)
			}

			ax := offset.Mul(omega.ExpInt(uint64(aIndices[s])))
			bx := offset.Mul(omega.ExpInt(uint64(bIndices[s])))
			cx := alphas[r]
			colinear, err := core.TestColinearity([3]core.Point{
				{X: ax, Y: ay},
				{X: bx, Y: by},
				{X: cx, Y: cy},
			})
			if err != nil {
				return false, err
			}
			if !colinear {
				return false, fmt.Errorf("%w: colinearity check failure at round %d", ErrLowDegreeFailure, r)
			}
		}

		for s := 0; s < f.numColinearityTests; s++ {
			pathA, err := t.PullPath()
			if err != nil {
				return false, err
			}
			ok, err := merkle.Verify(roots[r], aIndices[s], pathA, aa[s].Bytes())
			if err != nil {
				return false, err
			}
			if !ok {
				return false, fmt.Errorf("%w: merkle authentication path verification fails for a at round %d", ErrLowDegreeFailure, r)
			}

			pathB, err := t.PullPath()
			if err != nil {
				return false, err
			}
			ok, err = merkle.Verify(roots[r], bIndices[s], pathB, bb[s].Bytes())
			if err != nil {
				return false, err
			}
			if !ok {
				return false, fmt.Errorf("%w: merkle authentication path verification fails for b at round %d", ErrLowDegreeFailure, r)
			}

			pathC, err := t.PullPath()
			if err != nil {
				return false, err
			}
			ok, err = merkle.Verify(roots[r+1], cIndices[s], pathC, cc[s].Bytes())
			if err != nil {
				return false, err
			}
			if !ok {
				return false, fmt.Errorf("%w: merkle authentication path verification fails for c at round %d", ErrLowDegreeFailure, r)
			}
		}

		omega = omega.Mul(omega)
		offset = offset.Mul(offset)
	}

	return true, nil
}
