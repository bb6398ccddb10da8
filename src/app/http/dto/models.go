package dto

import "textconv/src/core/domain"

// ConvertRequest is the payload for POST /api/convert.
// A missing text field decodes to "" and is rejected as empty input.
type ConvertRequest struct {
	Text string `json:"text"`
}

// ConvertResponse is the success body of POST /api/convert.
type ConvertResponse struct {
	Input      string `json:"input"`
	Binary8Bit string `json:"binary_8bit"`
	Morse      string `json:"morse"`
}

// NewConvertResponse maps a domain conversion to the API shape.
func NewConvertResponse(c *domain.Conversion) ConvertResponse {
	return ConvertResponse{
		Input:      c.Input,
		Binary8Bit: c.Binary,
		Morse:      c.Morse,
	}
}
