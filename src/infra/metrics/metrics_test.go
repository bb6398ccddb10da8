package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textconv/src/core/domain"
)

func TestConversionRecorder(t *testing.T) {
	m := New()

	m.ConversionSucceeded(&domain.Conversion{Input: "a#b", Dropped: 1})
	m.ConversionSucceeded(&domain.Conversion{Input: "SOS"})
	m.ConversionRejected(domain.NewEmptyInputError("text"))
	m.ConversionRejected(domain.NewValidationError("text", "bad"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.conversions.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversions.WithLabelValues("empty_input")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversions.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.morseDropped))
}

func TestObserveHTTP(t *testing.T) {
	m := New()

	m.ObserveHTTP(http.MethodPost, "/api/convert", 200, 3*time.Millisecond, 120)
	m.ObserveHTTP(http.MethodPost, "/api/convert", 400, time.Millisecond, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("POST", "/api/convert", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("POST", "/api/convert", "400")))
}

func TestObserveHTTP_UnknownMethods(t *testing.T) {
	m := New()

	for _, method := range []string{"BREW", "PROPFIND", "X-1", "get"} {
		m.ObserveHTTP(method, "/api/convert", 405, time.Millisecond, 0)
	}

	assert.Equal(t, 4.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("OTHER", "/api/convert", "405")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestCounter))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ConversionSucceeded(&domain.Conversion{Input: "x"})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `textconv_conversions_total{result="ok"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}

func TestNew_Independent(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
