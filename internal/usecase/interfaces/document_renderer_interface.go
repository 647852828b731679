package interfaces

import (
	"context"

	"smeta/internal/domain/entities"
	"smeta/internal/domain/pricing"
)

// IDocumentRenderer produces the printable form of an estimate.
type IDocumentRenderer interface {
	Render(ctx context.Context, doc entities.Document, quote pricing.Quote) ([]byte, error)
}
