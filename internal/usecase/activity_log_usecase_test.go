package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"translation_backoffice/internal/domain/entities"
	mock_interfaces "translation_backoffice/internal/usecase/interfaces/mocks"

	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func TestInferTargetType(t *testing.T) {
	cases := map[string]string{
		"admin_login":              "admin",
		"order_created":            "order",
		"quote_status_changed":     "quote",
		"line_item_updated":        "line_item",
		"certification_deleted":    "certification",
		"adjustment_created":       "adjustment",
		"message_sent":             "message",
		"payment_approved":         "payment",
		"customer_updated":         "customer",
		"  QUOTE_created ":         "quote",
		"settings_changed":         "system",
		"":                         "system",
		"quoteless_action_no_pref": "system",
	}
	for action, want := range cases {
		if got := InferTargetType(action); got != want {
			t.Fatalf("action %q: expected %q, got %q", action, want, got)
		}
	}
}

func TestActivityLogUseCase_Log(t *testing.T) {
	fixed := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	t.Run("primary insert fills derived fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewActivityLogUseCase(repo)
		uc.now = func() time.Time { return fixed }

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ActivityLogEntry) error {
				if e.ID == "" || !e.CreatedAt.Equal(fixed) {
					t.Fatalf("id and created_at must be set: %+v", e)
				}
				if e.TargetType != "order" || e.AdminID != "adm-1" {
					t.Fatalf("unexpected entry: %+v", e)
				}
				return nil
			},
		)

		if !uc.Log(context.Background(), entities.ActivityLogEntry{AdminID: " adm-1 ", ActionType: "order_created"}) {
			t.Fatalf("expected true")
		}
	})

	t.Run("explicit target type is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewActivityLogUseCase(repo)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ActivityLogEntry) error {
				if e.TargetType != "customer" {
					t.Fatalf("expected explicit target type, got %q", e.TargetType)
				}
				return nil
			},
		)

		uc.Log(context.Background(), entities.ActivityLogEntry{AdminID: "adm-1", ActionType: "quote_created", TargetType: "customer"})
	})

	t.Run("falls back to the legacy table once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewActivityLogUseCase(repo)

		gomock.InOrder(
			repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("relation does not exist")),
			repo.EXPECT().InsertLegacy(gomock.Any(), gomock.Any()).Return(nil),
		)

		if !uc.Log(context.Background(), entities.ActivityLogEntry{AdminID: "adm-1", ActionType: "admin_login"}) {
			t.Fatalf("expected true after fallback")
		}
	})

	t.Run("both writes fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewActivityLogUseCase(repo)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("primary"))
		repo.EXPECT().InsertLegacy(gomock.Any(), gomock.Any()).Return(errors.New("legacy"))

		if uc.Log(context.Background(), entities.ActivityLogEntry{AdminID: "adm-1", ActionType: "admin_login"}) {
			t.Fatalf("expected false")
		}
	})

	t.Run("missing action type is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewActivityLogUseCase(repo)

		if uc.Log(context.Background(), entities.ActivityLogEntry{AdminID: "adm-1", ActionType: "  "}) {
			t.Fatalf("expected false")
		}
	})

	t.Run("nil repository", func(t *testing.T) {
		uc := NewActivityLogUseCase(nil)
		if uc.Log(context.Background(), entities.ActivityLogEntry{ActionType: "quote_created"}) {
			t.Fatalf("expected false")
		}
	})
}

func TestActivityLogUseCase_List(t *testing.T) {
	t.Run("limit out of range", func(t *testing.T) {
		uc := NewActivityLogUseCase(nil)
		for _, limit := range []int{-1, 501} {
			if _, err := uc.List(context.Background(), entities.ActivityLogFilter{Limit: limit}); !errors.Is(err, ErrInvalidActivityFilter) {
				t.Fatalf("limit %d: expected ErrInvalidActivityFilter, got %v", limit, err)
			}
		}
	})

	t.Run("normalizes the filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewActivityLogUseCase(repo)

		repo.EXPECT().List(gomock.Any(), entities.ActivityLogFilter{AdminID: "adm-1", TargetType: "quote", TargetID: "q-1", Limit: 20}).
			Return([]entities.ActivityLogEntry{{ID: "a-1"}}, nil)

		res, err := uc.List(context.Background(), entities.ActivityLogFilter{AdminID: " adm-1", TargetType: " Quote ", TargetID: "q-1 ", Limit: 20})
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestActivityLogUseCase_Export(t *testing.T) {
	t.Run("writes a workbook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewActivityLogUseCase(repo)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.ActivityLogFilter) ([]entities.ActivityLogEntry, error) {
				if f.Limit != maxActivityExportLimit {
					t.Fatalf("expected export limit, got %d", f.Limit)
				}
				return []entities.ActivityLogEntry{
					{
						AdminID: "adm-1", ActionType: "quote_created", TargetType: "quote", TargetID: "q-1",
						Details: map[string]any{"workflow": "hitl"}, CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
					},
					{AdminID: "adm-2", ActionType: "admin_login", TargetType: "admin"},
				}, nil
			},
		)

		var buf bytes.Buffer
		if err := uc.Export(context.Background(), entities.ActivityLogFilter{}, &buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f, err := excelize.OpenReader(&buf)
		if err != nil {
			t.Fatalf("output is not a workbook: %v", err)
		}
		defer func() { _ = f.Close() }()

		rows, err := f.GetRows(activitySheetName)
		if err != nil {
			t.Fatalf("read rows: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d", len(rows))
		}
		if rows[0][2] != "action_type" || rows[1][0] != "2026-01-02T03:04:05Z" || rows[1][6] != `{"workflow":"hitl"}` {
			t.Fatalf("unexpected rows: %v", rows)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewActivityLogUseCase(repo)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("pg"))

		var buf bytes.Buffer
		if err := uc.Export(context.Background(), entities.ActivityLogFilter{}, &buf); err == nil {
			t.Fatalf("expected error")
		}
	})
}
