package domain

// APIBinaryBits is the token width used for the binary_8bit field of the API.
const APIBinaryBits = 8

// MaxBinaryBits bounds the token width a caller may ask for. Every Unicode
// code point fits in 21 bits; the rest is padding.
const MaxBinaryBits = 64

// SelfCheckInput and SelfCheckMorse are the probe used by the health check.
const (
	SelfCheckInput = "SOS"
	SelfCheckMorse = "... --- ..."
)
