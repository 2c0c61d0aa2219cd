package gofri

import (
	"github.com/actuallyachraf/gofri/internal/gofri/core"
	"github.com/actuallyachraf/gofri/internal/gofri/fri"
	"github.com/actuallyachraf/gofri/internal/gofri/transcript"
)

// Error kinds surfaced by the public API: algebraic errors are fatal
// precondition violations and propagate without recovery; ErrLowDegreeFailure
// is the one verifier verdict, returned as (false, err) rather than
// panicking.
var (
	// ErrDivisionByZero is returned by field or polynomial division by zero.
	ErrDivisionByZero = core.ErrDivisionByZero

	// ErrBadParameter is returned for malformed inputs: mismatched lengths,
	// out-of-range indices, non-power-of-two lengths, and similar.
	ErrBadParameter = core.ErrBadParameter

	// ErrNonExactDivision is returned by exact polynomial division ("/")
	// when the remainder is non-zero.
	ErrNonExactDivision = core.ErrNonExactDivision

	// ErrTranscriptExhausted is returned by Pull once every pushed object
	// has been read.
	ErrTranscriptExhausted = transcript.ErrExhausted

	// ErrLowDegreeFailure wraps the verifier's rejection diagnostics: a
	// malformed final codeword, too-high interpolated degree, a failed
	// colinearity test, or a failed Merkle authentication path.
	ErrLowDegreeFailure = fri.ErrLowDegreeFailure
)
