package ports

import (
	"context"
	"io"
)

// ProofStorage persists uploaded images under a relative path such as
// "uploads/proofs/order_12_1700000000.jpg".
type ProofStorage interface {
	Save(ctx context.Context, relPath string, r io.Reader) error

	// Remove deletes a stored image. A missing file is not an error.
	Remove(ctx context.Context, relPath string) error
}
