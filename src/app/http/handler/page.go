package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the static converter page.
type PageHandler struct {
	html []byte
}

// NewPageHandler creates a PageHandler serving html as-is.
func NewPageHandler(html []byte) *PageHandler {
	return &PageHandler{html: html}
}

// Index returns the converter page.
// GET /
func (h *PageHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.html)
}
