package handlers

import (
	"net/http"
	"testing"

	"translation_backoffice/internal/adapter/http/handlers/mocks"
	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestCertificationHandler(t *testing.T) {
	setup := func(t *testing.T) (*mocks.MockICertificationUseCase, http.Handler) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICertificationUseCase(ctrl)
		h := NewCertificationHandler(uc)
		r := newRouter()
		r.GET("/v1/quotes/:quote_id/certifications", h.ListCertifications)
		r.POST("/v1/quotes/:quote_id/certifications", h.CreateCertification)
		r.PUT("/v1/quotes/:quote_id/certifications/:certification_id", h.UpdateCertification)
		r.DELETE("/v1/quotes/:quote_id/certifications/:certification_id", h.DeleteCertification)
		return uc, r
	}

	t.Run("missing type code", func(t *testing.T) {
		_, r := setup(t)
		w := doRequest(r, http.MethodPost, "/v1/quotes/q-1/certifications", `{"name":"Notarized"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), "q-1", gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Actor, _ string, in usecase.CertificationInput) (entities.Certification, entities.QuoteTotals, error) {
				if in.TypeCode != "notarized" || in.DefaultRate != 25 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Certification{ID: "c-1", QuoteID: "q-1", TypeCode: "notarized", DefaultRate: 25}, sampleTotals(), nil
			})

		w := doRequest(r, http.MethodPost, "/v1/quotes/q-1/certifications", `{"type_code":"notarized","default_rate":25}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		cert, _ := body["certification"].(map[string]any)
		if cert["id"] != "c-1" || cert["amount"] != 25.0 {
			t.Fatalf("unexpected certification: %v", body)
		}
		assertTotals(t, body)
	})

	t.Run("update quote missing", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().Update(gomock.Any(), gomock.Any(), "q-9", "c-1", gomock.Any()).Return(entities.Certification{}, entities.QuoteTotals{}, usecase.ErrQuoteNotFound)

		w := doRequest(r, http.MethodPut, "/v1/quotes/q-9/certifications/c-1", `{"type_code":"notarized"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().Delete(gomock.Any(), gomock.Any(), "q-1", "c-1").Return(sampleTotals(), nil)

		w := doRequest(r, http.MethodDelete, "/v1/quotes/q-1/certifications/c-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		assertTotals(t, decodeBody(t, w))
	})

	t.Run("list", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().List(gomock.Any(), "q-1").Return(nil, usecase.ErrQuoteNotFound)

		w := doRequest(r, http.MethodGet, "/v1/quotes/q-1/certifications", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
