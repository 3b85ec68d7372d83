// Package ports declares the collaborator interfaces the matching module
// needs from other modules. Adapters in internal/adapters satisfy them.
package ports

import (
	"context"

	"dealflow_backend/internal/matching/domain"

	"github.com/google/uuid"
)

// SubjectReader resolves a stored property into a matching subject.
type SubjectReader interface {
	SubjectByID(ctx context.Context, id uuid.UUID) (domain.SubjectProperty, error)
}
