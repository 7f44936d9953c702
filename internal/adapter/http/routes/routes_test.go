package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"translation_backoffice/internal/adapter/http/handlers"
	"translation_backoffice/internal/adapter/http/handlers/mocks"
	"translation_backoffice/internal/adapter/http/realtime"
	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
)

const testSecret = "routes-secret"

type routerMocks struct {
	quotes    *mocks.MockIQuoteUseCase
	lineItems *mocks.MockILineItemUseCase
	checkout  *mocks.MockICheckoutUseCase
}

func newTestRouter(t *testing.T) (routerMocks, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := routerMocks{
		quotes:    mocks.NewMockIQuoteUseCase(ctrl),
		lineItems: mocks.NewMockILineItemUseCase(ctrl),
		checkout:  mocks.NewMockICheckoutUseCase(ctrl),
	}

	var cfg config.Config
	cfg.JWT.Secret = testSecret
	cfg.Metrics.Enabled = true

	h := Handlers{
		Quotes:         handlers.NewQuoteHandler(m.quotes, mocks.NewMockIQuoteTotalsUseCase(ctrl)),
		LineItems:      handlers.NewLineItemHandler(m.lineItems),
		Certifications: handlers.NewCertificationHandler(mocks.NewMockICertificationUseCase(ctrl)),
		Adjustments:    handlers.NewAdjustmentHandler(mocks.NewMockIAdjustmentUseCase(ctrl)),
		Messages:       handlers.NewMessageHandler(mocks.NewMockIMessageUseCase(ctrl)),
		Activity:       handlers.NewActivityHandler(mocks.NewMockIActivityLogUseCase(ctrl)),
		Checkout:       handlers.NewCheckoutHandler(m.checkout, false),
		Chat:           realtime.NewHub(nil),
	}
	return m, NewRouter(cfg, h)
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "adm-1",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + s
}

func serve(r http.Handler, method, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter_PublicRoutes(t *testing.T) {
	_, r := newTestRouter(t)

	if w := serve(r, http.MethodGet, "/v1/ping", ""); w.Code != http.StatusOK {
		t.Fatalf("ping: expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/metrics", ""); w.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", w.Code)
	}
}

func TestNewRouter_CheckoutIsPublic(t *testing.T) {
	m, r := newTestRouter(t)
	m.checkout.EXPECT().GetLatestByQuoteID(gomock.Any(), "q-1").Return(entities.Payment{ID: "pay-1"}, nil)

	if w := serve(r, http.MethodGet, "/v1/checkout/q-1/payments", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewRouter_Guards(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		_, r := newTestRouter(t)
		if w := serve(r, http.MethodGet, "/v1/quotes", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("reviewer cannot delete line items", func(t *testing.T) {
		_, r := newTestRouter(t)
		if w := serve(r, http.MethodDelete, "/v1/quotes/q-1/line-items/li-1", bearer(t, "reviewer")); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin deletes line items", func(t *testing.T) {
		m, r := newTestRouter(t)
		m.lineItems.EXPECT().Delete(gomock.Any(), gomock.Any(), "q-1", "li-1").Return(entities.QuoteTotals{}, nil)

		if w := serve(r, http.MethodDelete, "/v1/quotes/q-1/line-items/li-1", bearer(t, "admin")); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("support lists quotes", func(t *testing.T) {
		m, r := newTestRouter(t)
		m.quotes.EXPECT().List(gomock.Any(), "").Return(nil, nil)

		if w := serve(r, http.MethodGet, "/v1/quotes", bearer(t, "support")); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reviewer cannot list payments", func(t *testing.T) {
		_, r := newTestRouter(t)
		if w := serve(r, http.MethodGet, "/v1/quotes/q-1/payments", bearer(t, "reviewer")); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("accountant lists payments", func(t *testing.T) {
		m, r := newTestRouter(t)
		m.checkout.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.Payment{{ID: "pay-1"}}, nil)

		if w := serve(r, http.MethodGet, "/v1/quotes/q-1/payments", bearer(t, "accountant")); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reviewer has no activity log", func(t *testing.T) {
		_, r := newTestRouter(t)
		if w := serve(r, http.MethodGet, "/v1/admin/activity", bearer(t, "reviewer")); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("any role reads its permissions", func(t *testing.T) {
		_, r := newTestRouter(t)
		if w := serve(r, http.MethodGet, "/v1/admin/permissions", bearer(t, "reviewer")); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
