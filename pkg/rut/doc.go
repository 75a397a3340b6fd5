// Package rut normalizes and validates Chilean national identifiers (RUT).
//
// A RUT is a digit body followed by a single verifier character, a digit or
// the letter K, that encodes a modulo-11 checksum over the body. Users type
// it in many shapes ("12345678-5", "12.345.678-5", "123456785"), so the
// package works in three steps:
//
//	Canonicalize  strip everything but digits and K, uppercase K
//	Format        canonical form grouped for display: 12.345.678-5
//	Validate      structural rules plus the checksum
//
// All three are total over string input. Malformed input is an ordinary
// negative result (an empty or partial string, or false), never an error,
// so they can run on every keystroke.
//
// # Domain Purity
//
// The package has no I/O and no shared mutable state; every function is safe
// for concurrent use. Callers needing a typed, already-validated value use
// Parse, which returns a RUT or an invalid_input domain error.
package rut
