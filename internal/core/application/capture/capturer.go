// Package capture stores proof artifacts (delivery photos, signatures and
// remittance receipts) on a best-effort basis. A failed capture is logged and
// reported as an empty path; it never fails the operation that requested it.
package capture

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/proof"
	"driverapi/internal/core/ports"
	"driverapi/internal/pkg/metrics"
)

// NoIndex omits the index suffix from the stored file name.
const NoIndex = -1

var dirByKind = map[proof.Kind]string{
	proof.KindPhoto:      "uploads/proofs",
	proof.KindSignature:  "uploads/signatures",
	proof.KindRemittance: "uploads/remittances",
}

type Capturer struct {
	storage ports.ProofStorage
	logger  *slog.Logger
	now     func() time.Time
}

func NewCapturer(storage ports.ProofStorage, logger *slog.Logger) *Capturer {
	return &Capturer{
		storage: storage,
		logger:  logger.With("component", "proof_capture"),
		now:     time.Now,
	}
}

// WithClock returns a copy of the capturer using now for file names.
func (c *Capturer) WithClock(now func() time.Time) *Capturer {
	cp := *c
	cp.now = now
	return &cp
}

// Capture writes img and returns its relative path, or "" when nothing was stored.
// ownerID is the order id, or the driver id for remittance receipts.
func (c *Capturer) Capture(ctx context.Context, kind proof.Kind, ownerID kernel.ID, index int, img proof.Image) string {
	if img.IsEmpty() {
		return ""
	}

	dir, ok := dirByKind[kind]
	if !ok {
		c.fail(kind, ownerID, fmt.Errorf("unknown proof kind %d", kind))
		return ""
	}

	relPath := path.Join(dir, FileName(kind, ownerID, c.now(), index, img.Extension()))
	if err := c.storage.Save(ctx, relPath, img.Reader()); err != nil {
		c.fail(kind, ownerID, err)
		return ""
	}

	c.logger.DebugContext(ctx, "proof stored", "kind", kind.String(), "path", relPath, "bytes", img.Size())
	return relPath
}

// Discard removes images stored by a command whose transaction did not commit.
// Empty paths are skipped; failures are logged.
func (c *Capturer) Discard(ctx context.Context, relPaths ...string) {
	for _, relPath := range relPaths {
		if relPath == "" {
			continue
		}
		if err := c.storage.Remove(ctx, relPath); err != nil {
			c.logger.Warn("orphaned proof not removed", "path", relPath, "error", err)
			continue
		}
		c.logger.DebugContext(ctx, "proof discarded", "path", relPath)
	}
}

func (c *Capturer) fail(kind proof.Kind, ownerID kernel.ID, err error) {
	metrics.ProofCaptureFailuresTotal.WithLabelValues(kind.String()).Inc()
	c.logger.Warn("proof not stored", "kind", kind.String(), "owner_id", ownerID.Int64(), "error", err)
}

// FileName builds order_<id>_<unix>[_<index>].<ext>, or remit_<driver>_<unix>.<ext> for remittances.
func FileName(kind proof.Kind, ownerID kernel.ID, at time.Time, index int, ext string) string {
	prefix := "order"
	if kind == proof.KindRemittance {
		prefix = "remit"
	}

	name := fmt.Sprintf("%s_%d_%d", prefix, ownerID.Int64(), at.Unix())
	if index >= 0 {
		name = fmt.Sprintf("%s_%d", name, index)
	}
	return name + "." + ext
}
