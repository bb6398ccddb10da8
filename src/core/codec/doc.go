// Package codec holds the pure text encoders used by the conversion service.
//
// Both encoders trim their input first and never fail:
//   - EncodeBinary renders each code point as a zero-padded base-2 token.
//   - EncodeMorse renders each known character with the ITU Morse table and
//     silently drops everything else.
//
// Nothing here allocates shared state after package init, so every function
// is safe for concurrent use.
package codec
