package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"csob_gateway/internal/diagnostics"
	"csob_gateway/internal/domain/entities"
	mock_interfaces "csob_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func recorderWithConfig(t *testing.T) *diagnostics.Recorder {
	t.Helper()
	cfg, err := entities.NewMerchantConfig(entities.MerchantConfigParams{
		MerchantID:        "M123",
		PrivateKeyPath:    "/keys/priv.key",
		BankPublicKeyPath: "/keys/bank.pub",
		ShopName:          "My Shop",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := diagnostics.NewRecorder()
	rec.SetActiveConfig(cfg)
	return rec
}

func TestDiagnosticArchiveUseCase_ArchiveSnapshot(t *testing.T) {
	t.Run("repository not configured", func(t *testing.T) {
		uc := NewDiagnosticArchiveUseCase(nil, diagnostics.NewRecorder())
		_, err := uc.ArchiveSnapshot(context.Background())
		if !errors.Is(err, ErrArchiveUnavailable) {
			t.Fatalf("expected ErrArchiveUnavailable, got %v", err)
		}
	})

	t.Run("no active config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDiagnosticArchiveRepository(ctrl)
		uc := NewDiagnosticArchiveUseCase(repo, diagnostics.NewRecorder())

		_, err := uc.ArchiveSnapshot(context.Background())
		if !errors.Is(err, ErrNoActiveConfig) {
			t.Fatalf("expected ErrNoActiveConfig, got %v", err)
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDiagnosticArchiveRepository(ctrl)

		rec := recorderWithConfig(t)
		rec.RecordCall(1, diagnostics.PayloadFromJSON(json.RawMessage(`{"amount":100}`)), nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ArchivedCall{}, errors.New("db"))

		uc := NewDiagnosticArchiveUseCase(repo, rec)
		_, err := uc.ArchiveSnapshot(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success archives every entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDiagnosticArchiveRepository(ctrl)

		rec := recorderWithConfig(t)
		rec.RecordCall(1, diagnostics.PayloadFromJSON(json.RawMessage(`{"amount":100}`)), diagnostics.PayloadFromJSON(json.RawMessage(`{"status":"ok"}`)))
		rec.RecordCall(2, diagnostics.PayloadFromJSON(json.RawMessage(`{"amount":200}`)), nil)

		var stored []entities.ArchivedCall
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, call entities.ArchivedCall) (entities.ArchivedCall, error) {
				stored = append(stored, call)
				return call, nil
			})

		uc := NewDiagnosticArchiveUseCase(repo, rec)
		archived, err := uc.ArchiveSnapshot(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(archived) != 2 {
			t.Fatalf("expected 2 archived calls, got %d", len(archived))
		}

		if stored[0].CallID != 1 || stored[1].CallID != 2 {
			t.Fatalf("expected recorder order, got %+v", stored)
		}
		if stored[0].Failed || !stored[1].Failed {
			t.Fatalf("unexpected failed flags: %+v", stored)
		}
		for _, call := range stored {
			if call.MerchantID != "M123" {
				t.Fatalf("expected merchant id on every call: %+v", call)
			}
			if call.ID == "" {
				t.Fatalf("expected a generated archive id: %+v", call)
			}
		}
		if stored[0].ID == stored[1].ID {
			t.Fatalf("expected distinct archive ids: %+v", stored)
		}
		if string(stored[0].Response) != `{"status":"ok"}` {
			t.Fatalf("unexpected response json: %s", stored[0].Response)
		}
		if stored[1].Response != nil {
			t.Fatalf("expected nil response for the failed call, got %s", stored[1].Response)
		}
	})
}

func TestDiagnosticArchiveUseCase_ListByMerchantID(t *testing.T) {
	t.Run("empty merchant id", func(t *testing.T) {
		uc := NewDiagnosticArchiveUseCase(nil, diagnostics.NewRecorder())
		_, err := uc.ListByMerchantID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidMerchantID) {
			t.Fatalf("expected ErrInvalidMerchantID, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDiagnosticArchiveRepository(ctrl)

		want := []entities.ArchivedCall{{ID: "a-1", MerchantID: "M123", CallID: 1}}
		repo.EXPECT().ListByMerchantID(gomock.Any(), "M123").Return(want, nil)

		uc := NewDiagnosticArchiveUseCase(repo, diagnostics.NewRecorder())
		got, err := uc.ListByMerchantID(context.Background(), " M123 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "a-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
