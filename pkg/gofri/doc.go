// Package gofri provides a FRI (Fast Reed-Solomon IOP of Proximity)
// prover and verifier over a prime finite field, together with the
// algebraic primitives it depends on.
//
// # Features
//
// - Prime field arithmetic over an arbitrary-precision modulus
// - Univariate and multivariate polynomial algebra
// - A power-of-two binary Merkle commitment
// - A Fiat-Shamir transcript for non-interactive proofs
// - FRI commit / query / verify
//
// # Quick Start
//
// Proving a codeword is close to a low-degree polynomial:
//
//	field := gofri.CanonicalField()
//	omega, err := field.PrimitiveNthRoot(64)
//	if err != nil {
//		log.Fatal(err)
//	}
//	offset, err := field.Generator()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	protocol, err := gofri.New(offset, omega, 64, 4, 4)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	proverTranscript := gofri.NewTranscript()
//	_, err = protocol.Prove(codeword, proverTranscript)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Verifying it back, by pulling from the same transcript (there is no
// deserializer for the bytes Serialize produces):
//
//	ok, err := protocol.Verify(proverTranscript, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if ok {
//		fmt.Println("proof is valid")
//	}
//
// # Architecture
//
// gofri uses a public/private split:
//
// - pkg/gofri/: public API (this package)
// - internal/gofri/: private implementation (not importable)
//
// The public API re-exports the core, transcript, and fri types as aliases,
// so callers never import internal/ directly. Implementation details there
// can be refactored without breaking the public API.
package gofri
