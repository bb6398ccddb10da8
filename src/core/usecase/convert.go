package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"textconv/src/core/codec"
	"textconv/src/core/domain"
	"textconv/src/core/ports"
)

// ConvertService encodes text into binary and Morse.
type ConvertService struct {
	recorder ports.ConversionRecorder
	log      *slog.Logger
}

var _ ports.Converter = (*ConvertService)(nil)

// NewConvertService creates a ConvertService. A nil recorder discards metrics.
func NewConvertService(recorder ports.ConversionRecorder, log *slog.Logger) *ConvertService {
	if recorder == nil {
		recorder = ports.NopRecorder{}
	}
	return &ConvertService{recorder: recorder, log: log}
}

// Convert trims text and returns both encodings. Blank text yields a
// domain EmptyInput error. bits of 0 uses codec.DefaultBits; a negative
// width or one above domain.MaxBinaryBits is a validation error.
func (s *ConvertService) Convert(ctx context.Context, text string, bits int) (*domain.Conversion, error) {
	if bits < 0 || bits > domain.MaxBinaryBits {
		err := domain.NewValidationError("bits",
			fmt.Sprintf("bits must be between 1 and %d, got %d", domain.MaxBinaryBits, bits))
		s.recorder.ConversionRejected(err)
		return nil, err
	}
	if bits == 0 {
		bits = codec.DefaultBits
	}

	input, err := domain.NormalizeInput(text)
	if err != nil {
		s.recorder.ConversionRejected(err)
		return nil, err
	}

	morse, dropped := codec.EncodeMorseCount(input)
	conv := &domain.Conversion{
		Input:   input,
		Binary:  codec.EncodeBinary(input, bits),
		Bits:    bits,
		Morse:   morse,
		Dropped: dropped,
	}

	s.recorder.ConversionSucceeded(conv)
	if s.log != nil {
		s.log.DebugContext(ctx, "conversion done",
			"runes", conv.Runes(),
			"bits", bits,
			"morse_dropped", dropped,
		)
	}
	return conv, nil
}

// Health runs a fixed probe through the Morse encoder.
func (s *ConvertService) Health(ctx context.Context) error {
	if got := codec.EncodeMorse(domain.SelfCheckInput); got != domain.SelfCheckMorse {
		return fmt.Errorf("morse self-check: got %q, want %q", got, domain.SelfCheckMorse)
	}
	return nil
}
