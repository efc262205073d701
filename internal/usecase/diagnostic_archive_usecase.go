package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"csob_gateway/internal/diagnostics"
	"csob_gateway/internal/domain/entities"
	"csob_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNoActiveConfig     = errors.New("no active merchant configuration")
	ErrInvalidMerchantID  = errors.New("invalid merchant_id")
	ErrArchiveUnavailable = errors.New("archive repository not configured")
)

// IDiagnosticArchiveUseCase flushes the in-memory recorder into durable
// storage and reads the persisted audit trail back.

type IDiagnosticArchiveUseCase interface {
	ArchiveSnapshot(ctx context.Context) ([]entities.ArchivedCall, error)
	ListByMerchantID(ctx context.Context, merchantID string) ([]entities.ArchivedCall, error)
}

type DiagnosticArchiveUseCase struct {
	repo interfaces.IDiagnosticArchiveRepository
	rec  *diagnostics.Recorder
}

var _ IDiagnosticArchiveUseCase = (*DiagnosticArchiveUseCase)(nil)

func NewDiagnosticArchiveUseCase(repo interfaces.IDiagnosticArchiveRepository, rec *diagnostics.Recorder) *DiagnosticArchiveUseCase {
	return &DiagnosticArchiveUseCase{repo: repo, rec: rec}
}

// ArchiveSnapshot persists every currently recorded entry under the
// active merchant. Entries are written in recorder iteration order; each
// gets a fresh archive id so repeated snapshots never collide.
func (u *DiagnosticArchiveUseCase) ArchiveSnapshot(ctx context.Context) ([]entities.ArchivedCall, error) {
	if u.repo == nil {
		log.Printf("[diagnostics][usecase] archive repository not configured")
		return nil, ErrArchiveUnavailable
	}

	cfg, ok := u.rec.ActiveConfig()
	if !ok {
		log.Printf("[diagnostics][usecase] archive refused: no active merchant configuration")
		return nil, ErrNoActiveConfig
	}

	entries := u.rec.Entries()
	log.Printf("[diagnostics][usecase] archive start merchant_id=%s entries=%d", cfg.MerchantID, len(entries))

	now := time.Now().UTC()
	archived := make([]entities.ArchivedCall, 0, len(entries))
	for _, e := range entries {
		call := entities.ArchivedCall{
			ID:         uuid.NewString(),
			MerchantID: cfg.MerchantID,
			CallID:     e.ID,
			Failed:     e.Failed(),
			RecordedAt: now,
			Request:    e.Request.JSON(),
			Response:   e.Response.JSON(),
		}

		created, err := u.repo.Create(ctx, call)
		if err != nil {
			log.Printf("[diagnostics][usecase] archive failed merchant_id=%s call_id=%d err=%v", cfg.MerchantID, e.ID, err)
			return nil, err
		}
		archived = append(archived, created)
	}

	log.Printf("[diagnostics][usecase] archive success merchant_id=%s archived=%d", cfg.MerchantID, len(archived))
	return archived, nil
}

func (u *DiagnosticArchiveUseCase) ListByMerchantID(ctx context.Context, merchantID string) ([]entities.ArchivedCall, error) {
	merchantID = strings.TrimSpace(merchantID)
	if merchantID == "" {
		return nil, ErrInvalidMerchantID
	}
	if u.repo == nil {
		return nil, ErrArchiveUnavailable
	}
	return u.repo.ListByMerchantID(ctx, merchantID)
}
