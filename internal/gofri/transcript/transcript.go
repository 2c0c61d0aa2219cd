// Package transcript implements the Fiat-Shamir transcript FRI rides on: an
// append-only object log with a strictly-advancing read cursor, serialized
// with a fixed tagged schema and hashed with SHAKE-256 to derive challenges.
package transcript

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/actuallyachraf/gofri/internal/gofri/core"
)

// ErrExhausted is returned by Pull once every pushed object has been read.
var ErrExhausted = fmt.Errorf("gofri: transcript exhausted")

// Object tags for the canonical on-the-wire schema. Each pushed object is
// prefixed by one of these before its length-prefixed payload.
const (
	tagRoot byte = iota
	tagTriple
	tagPath
	tagCodeword
)

// object is the internal representation of anything pushed onto the
// transcript: its tag plus an already-serialized payload, kept around so
// Serialize never needs to re-derive bytes from typed Go values.
type object struct {
	tag     byte
	payload []byte
}

// Transcript is an ordered, append-only log of proof objects with a single
// read cursor. Pushing is the prover's role, pulling the verifier's. The
// type does not track or enforce either role, and there is no deserializer:
// a verifier reads a proof by pulling from the instance the prover pushed
// to, starting at the first object.
type Transcript struct {
	objects   []object
	readIndex int
}

// New returns an empty transcript.
func New() *Transcript {
	return &Transcript{}
}

func lengthPrefixed(tag byte, payload []byte) object {
	return object{tag: tag, payload: payload}
}

// PushRoot appends a Merkle root.
func (t *Transcript) PushRoot(root []byte) {
	t.objects = append(t.objects, lengthPrefixed(tagRoot, root))
}

// PushTriple appends a colinearity query triple (a, b, c).
func (t *Transcript) PushTriple(a, b, c *core.FieldElement) {
	payload := append(append(append([]byte{}, a.Bytes()...), b.Bytes()...), c.Bytes()...)
	t.objects = append(t.objects, lengthPrefixed(tagTriple, payload))
}

// PushPath appends a Merkle authentication path: a sequence of sibling
// hashes, length-prefixed so PullPath can recover the individual hashes back.
func (t *Transcript) PushPath(path [][]byte) {
	var buf []byte
	var countBuf [4]byte
	binary.BigEndian.PutUint32(countBuf[:], uint32(len(path)))
	buf = append(buf, countBuf[:]...)
	for _, sibling := range path {
		var lenBuf [4]byte
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(sibling)))
		buf = append(buf, lenBuf[:]...)
		buf = append(buf, sibling...)
	}
	t.objects = append(t.objects, lengthPrefixed(tagPath, buf))
}

// PushCodeword appends a full codeword (the final round's folded
// evaluations).
func (t *Transcript) PushCodeword(codeword []*core.FieldElement) {
	var buf []byte
	var countBuf [4]byte
	binary.BigEndian.PutUint32(countBuf[:], uint32(len(codeword)))
	buf = append(buf, countBuf[:]...)
	for _, c := range codeword {
		buf = append(buf, c.Bytes()...)
	}
	t.objects = append(t.objects, lengthPrefixed(tagCodeword, buf))
}

// PullRoot reads the next object, asserting it is a root.
func (t *Transcript) PullRoot() ([]byte, error) {
	obj, err := t.pull(tagRoot)
	if err != nil {
		return nil, err
	}
	return obj.payload, nil
}

// PullTriple reads the next object, asserting it is a colinearity triple,
// and decodes it over field.
func (t *Transcript) PullTriple(field *core.Field) (a, b, c *core.FieldElement, err error) {
	obj, err := t.pull(tagTriple)
	if err != nil {
		return nil, nil, nil, err
	}
	width := len(obj.payload) / 3
	a = field.Sample(obj.payload[0:width])
	b = field.Sample(obj.payload[width : 2*width])
	c = field.Sample(obj.payload[2*width : 3*width])
	return a, b, c, nil
}

// PullPath reads the next object, asserting it is a Merkle authentication
// path.
func (t *Transcript) PullPath() ([][]byte, error) {
	obj, err := t.pull(tagPath)
	if err != nil {
		return nil, err
	}
	buf := obj.payload
	count := binary.BigEndian.Uint32(buf[0:4])
	buf = buf[4:]
	path := make([][]byte, 0, count)
	for i := uint32(0); i < count; i++ {
		n := binary.BigEndian.Uint32(buf[0:4])
		buf = buf[4:]
		path = append(path, buf[:n])
		buf = buf[n:]
	}
	return path, nil
}

// PullCodeword reads the next object, asserting it is a codeword, and
// decodes it over field.
func (t *Transcript) PullCodeword(field *core.Field) ([]*core.FieldElement, error) {
	obj, err := t.pull(tagCodeword)
	if err != nil {
		return nil, err
	}
	buf := obj.payload
	count := binary.BigEndian.Uint32(buf[0:4])
	buf = buf[4:]
	if count == 0 {
		return []*core.FieldElement{}, nil
	}
	width := len(buf) / int(count)
	codeword := make([]*core.FieldElement, 0, count)
	for i := uint32(0); i < count; i++ {
		codeword = append(codeword, field.Sample(buf[:width]))
		buf = buf[width:]
	}
	return codeword, nil
}

func (t *Transcript) pull(wantTag byte) (object, error) {
	if t.readIndex >= len(t.objects) {
		return object{}, ErrExhausted
	}
	obj := t.objects[t.readIndex]
	if obj.tag != wantTag {
		return object{}, fmt.Errorf("%w: expected tag %d, got %d", core.ErrBadParameter, wantTag, obj.tag)
	}
	t.readIndex++
	return obj, nil
}

// Serialize renders the full object list in the fixed tagged schema: each
// object is [tag, 4-byte length, payload] in push order.
func (t *Transcript) Serialize() []byte {
	return t.serializeRange(len(t.objects))
}

// serializeRange renders the first n pushed objects.
func (t *Transcript) serializeRange(n int) []byte {
	var buf []byte
	for _, obj := range t.objects[:n] {
		buf = append(buf, obj.tag)
		var lenBuf [4]byte
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(obj.payload)))
		buf = append(buf, lenBuf[:]...)
		buf = append(buf, obj.payload...)
	}
	return buf
}

func shake256(data []byte, numBytes int) []byte {
	h := sha3.NewShake256()
	h.Write(data)
	out := make([]byte, numBytes)
	h.Read(out)
	return out
}

// ProverChallenge derives a challenge from the full object list: the
// prover's view, since it has pushed everything it knows about so far.
func (t *Transcript) ProverChallenge(numBytes int) []byte {
	return shake256(t.Serialize(), numBytes)
}

// VerifierChallenge derives a challenge from only the objects read so far:
// the verifier's view, so it agrees with the prover's challenge exactly when
// both sides have observed the same prefix.
func (t *Transcript) VerifierChallenge(numBytes int) []byte {
	return shake256(t.serializeRange(t.readIndex), numBytes)
}
