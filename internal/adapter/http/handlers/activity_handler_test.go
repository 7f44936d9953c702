package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"translation_backoffice/internal/adapter/http/handlers/mocks"
	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestActivityHandler(t *testing.T) {
	setup := func(t *testing.T) (*mocks.MockIActivityLogUseCase, http.Handler) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIActivityLogUseCase(ctrl)
		h := NewActivityHandler(uc)
		r := newRouter()
		r.GET("/v1/admin/activity", h.ListActivity)
		r.GET("/v1/admin/activity/export", h.ExportActivity)
		r.GET("/v1/admin/permissions", h.GetPermissions)
		return uc, r
	}

	t.Run("list binds filter", func(t *testing.T) {
		uc, r := setup(t)
		since := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f entities.ActivityLogFilter) ([]entities.ActivityLogEntry, error) {
				if f.AdminID != "adm-2" || f.TargetType != "quote" || f.Limit != 10 || !f.Since.Equal(since) {
					t.Fatalf("unexpected filter: %+v", f)
				}
				return []entities.ActivityLogEntry{{ID: "1", ActionType: "quote_created", TargetType: "quote"}}, nil
			})

		w := doRequest(r, http.MethodGet, "/v1/admin/activity?admin_id=adm-2&target_type=quote&limit=10&since=2026-02-01T00:00:00Z", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("list bad since", func(t *testing.T) {
		_, r := setup(t)
		w := doRequest(r, http.MethodGet, "/v1/admin/activity?since=yesterday", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list invalid filter", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidActivityFilter)

		w := doRequest(r, http.MethodGet, "/v1/admin/activity?limit=-5", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("export streams workbook and logs", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ entities.ActivityLogFilter, w io.Writer) error {
				_, err := w.Write([]byte("PK-fake-xlsx"))
				return err
			})
		uc.EXPECT().Log(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, e entities.ActivityLogEntry) bool {
				if e.ActionType != "activity_log_exported" || e.AdminID != "adm-1" {
					t.Fatalf("unexpected entry: %+v", e)
				}
				return true
			})

		w := doRequest(r, http.MethodGet, "/v1/admin/activity/export", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != xlsxContentType {
			t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
		}
		if !strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment;") {
			t.Fatalf("missing attachment header")
		}
		if w.Body.String() != "PK-fake-xlsx" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("export failure answers json", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("postgres down"))

		w := doRequest(r, http.MethodGet, "/v1/admin/activity/export", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("permissions of caller", func(t *testing.T) {
		_, r := setup(t)
		w := doRequest(r, http.MethodGet, "/v1/admin/permissions", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		perms, _ := body["permissions"].(map[string]any)
		if body["role"] != "admin" || len(perms) != 10 {
			t.Fatalf("unexpected body: %v", body)
		}
		admins, _ := perms["admins"].([]any)
		if len(admins) != 1 || admins[0] != "view" {
			t.Fatalf("admin role should only view admins, got %v", perms["admins"])
		}
	})
}
