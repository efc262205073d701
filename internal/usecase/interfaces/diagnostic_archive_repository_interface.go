package interfaces

import (
	"context"

	"csob_gateway/internal/domain/entities"
)

// IDiagnosticArchiveRepository abstracts DynamoDB persistence for the
// audit trail of recorded gateway calls.

type IDiagnosticArchiveRepository interface {
	Create(ctx context.Context, call entities.ArchivedCall) (entities.ArchivedCall, error)
	ListByMerchantID(ctx context.Context, merchantID string) ([]entities.ArchivedCall, error)
}
