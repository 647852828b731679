package interfaces

import "context"

// IDocumentRepository is the key-value slot a draft document is mirrored to.
//
// Documents are stored as the serialized JSON so that a corrupt slot can be
// detected and skipped by the caller instead of failing the read.
//   - Load returns (nil, nil) when the slot holds nothing.
//   - Save overwrites the slot.

type IDocumentRepository interface {
	Load(ctx context.Context, slot string) ([]byte, error)
	Save(ctx context.Context, slot string, document []byte) error
}
