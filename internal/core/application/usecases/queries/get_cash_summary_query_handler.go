package queries

import (
	"context"
	"time"

	"driverapi/internal/adapters/out/postgres/schema"
	"driverapi/internal/core/domain/model/cash"
	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/order"
	"driverapi/internal/core/domain/model/payment"

	"gorm.io/gorm"
)

type remittanceRow struct {
	RemittanceID int64
	DriverID     int64
	AmountCents  int64
	Note         *string
	ProofPath    *string
	CreatedAt    time.Time
}

// GetCashSummaryQueryHandler sums collected cash over paid cash-on-delivery
// payments of delivered orders assigned to the driver. Today's collections
// are counted by receipt time, today's remittances by creation time.
type GetCashSummaryQueryHandler struct {
	db   *gorm.DB
	caps CapabilitiesSource
}

func NewGetCashSummaryQueryHandler(db *gorm.DB, caps CapabilitiesSource) GetCashSummaryQueryHandler {
	return GetCashSummaryQueryHandler{db: db, caps: caps}
}

func (h GetCashSummaryQueryHandler) Handle(ctx context.Context, query GetCashSummaryQuery) (cash.Summary, error) {
	if err := query.Validate(); err != nil {
		return cash.Summary{}, err
	}

	caps := h.caps.Load()
	driverID := query.DriverID()

	var (
		summary cash.Summary
		err     error
	)

	if summary.Today, err = h.totals(ctx, caps, driverID, true); err != nil {
		return cash.Summary{}, err
	}
	if summary.AllTime, err = h.totals(ctx, caps, driverID, false); err != nil {
		return cash.Summary{}, err
	}
	if summary.Recent, err = h.recent(ctx, driverID); err != nil {
		return cash.Summary{}, err
	}

	return summary, nil
}

func (h GetCashSummaryQueryHandler) totals(
	ctx context.Context,
	caps schema.Capabilities,
	driverID kernel.ID,
	today bool,
) (cash.Totals, error) {
	var collected, remitted int64

	if caps.Orders.AssignedDriverID {
		delivered := "o.order_status = ?"
		args := []any{payment.MethodCOD, string(payment.StatusPaid), driverID.Int64()}
		if caps.Orders.DriverStatus {
			delivered = "(o.driver_status = ? OR o.order_status = ?)"
			args = append(args, order.Delivered.String())
		}
		args = append(args, order.StatusDelivered.String())

		statement := `
			SELECT COALESCE(ROUND(SUM(p.payment_amount) * 100), 0)::bigint
			FROM payment p
			JOIN orders o ON o.order_id = p.order_id
			LEFT JOIN order_payment_receipt r ON r.order_id = p.order_id
			WHERE UPPER(p.payment_method) = ? AND p.payment_status = ?
				AND o.assigned_driver_id = ?
				AND ` + delivered
		if today {
			statement += " AND r.payment_received_at::date = CURRENT_DATE"
		}

		if err := h.db.WithContext(ctx).Raw(statement, args...).Scan(&collected).Error; err != nil {
			return cash.Totals{}, err
		}
	}

	statement := `
		SELECT COALESCE(ROUND(SUM(amount) * 100), 0)::bigint
		FROM driver_cash_remittance
		WHERE driver_id = ?`
	if today {
		statement += " AND created_at::date = CURRENT_DATE"
	}
	if err := h.db.WithContext(ctx).Raw(statement, driverID.Int64()).Scan(&remitted).Error; err != nil {
		return cash.Totals{}, err
	}

	return cash.Totals{
		Collected: kernel.MoneyFromCents(collected),
		Remitted:  kernel.MoneyFromCents(remitted),
	}, nil
}

func (h GetCashSummaryQueryHandler) recent(ctx context.Context, driverID kernel.ID) ([]*cash.Remittance, error) {
	var rows []remittanceRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT remittance_id, driver_id, ROUND(amount * 100)::bigint AS amount_cents, note, proof_path, created_at
		FROM driver_cash_remittance
		WHERE driver_id = ?
		ORDER BY created_at DESC, remittance_id DESC
		LIMIT ?
	`, driverID.Int64(), RecentRemittancesLimit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	recent := make([]*cash.Remittance, 0, len(rows))
	for _, row := range rows {
		recent = append(recent, cash.RestoreRemittance(
			kernel.ID(row.RemittanceID),
			kernel.ID(row.DriverID),
			kernel.MoneyFromCents(row.AmountCents),
			row.Note,
			row.ProofPath,
			row.CreatedAt,
		))
	}
	return recent, nil
}
