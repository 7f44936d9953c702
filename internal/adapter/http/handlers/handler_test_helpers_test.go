package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"translation_backoffice/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// withAdmin stands in for the auth middleware.
func withAdmin(adminID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("admin_id", adminID)
		c.Set("admin_role", role)
		c.Next()
	}
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(withAdmin("adm-1", "admin"))
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func sampleTotals() entities.QuoteTotals {
	return entities.QuoteTotals{
		QuoteID: "q-1",
		Scope:   "manual_only",
		Breakdown: entities.TotalsBreakdown{
			Translation:   100,
			Certification: 25,
			Subtotal:      125,
			Tax:           6.25,
			Total:         131.25,
			TaxRate:       0.05,
		},
		Version: 2,
	}
}

func assertTotals(t *testing.T, body map[string]any) {
	t.Helper()
	totals, ok := body["totals"].(map[string]any)
	if !ok {
		t.Fatalf("expected totals object, got %v", body)
	}
	if totals["total"] != 131.25 || totals["taxRate"] != 0.05 || totals["subtotal"] != 125.0 {
		t.Fatalf("unexpected totals: %v", totals)
	}
}
