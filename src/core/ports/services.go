// Package ports defines interfaces (ports) that connect the core to its adapters.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations live in
// src/core/usecase (driving side) and src/infra (driven side).
package ports

import (
	"context"

	"textconv/src/core/domain"
)

// HealthChecker is implemented by components that can report their own health.
type HealthChecker interface {
	// Health returns nil when the component works as expected.
	Health(ctx context.Context) error
}

// Converter turns input text into its binary and Morse encodings.
type Converter interface {
	HealthChecker

	// Convert trims text, rejects it when empty and encodes it with the
	// given binary token width.
	Convert(ctx context.Context, text string, bits int) (*domain.Conversion, error)
}

// ConversionRecorder receives the outcome of every conversion.
// Implementations must be safe for concurrent use.
type ConversionRecorder interface {
	// ConversionSucceeded is called once per successful conversion.
	ConversionSucceeded(c *domain.Conversion)

	// ConversionRejected is called when the input failed validation.
	ConversionRejected(err error)
}

// NopRecorder discards all observations.
type NopRecorder struct{}

// ConversionSucceeded does nothing.
func (NopRecorder) ConversionSucceeded(*domain.Conversion) {}

// ConversionRejected does nothing.
func (NopRecorder) ConversionRejected(error) {}
