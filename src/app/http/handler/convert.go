package handler

import (
	"github.com/gin-gonic/gin"

	"textconv/src/app/http/dto"
	"textconv/src/app/http/response"
	"textconv/src/app/middleware"
	"textconv/src/core/domain"
	"textconv/src/core/ports"
)

// invalidBodyMessage is returned when the body is not a JSON object.
const invalidBodyMessage = "请求体必须是 JSON 对象"

// ConvertHandler handles the conversion API.
type ConvertHandler struct {
	converter ports.Converter
}

// NewConvertHandler creates a new ConvertHandler.
func NewConvertHandler(converter ports.Converter) *ConvertHandler {
	return &ConvertHandler{converter: converter}
}

// Convert encodes the posted text. The binary field always uses 8-bit tokens.
// POST /api/convert
func (h *ConvertHandler) Convert(c *gin.Context) {
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Attach error for middleware logging
		_ = c.Error(err)
		response.BadRequest(c, invalidBodyMessage, middleware.GetRequestID(c))
		return
	}

	conv, err := h.converter.Convert(c.Request.Context(), req.Text, domain.APIBinaryBits)
	if err != nil {
		_ = c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, dto.NewConvertResponse(conv))
}
