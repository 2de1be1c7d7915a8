// Package cash models cash-on-delivery money a driver collects and remits.
package cash

import (
	"errors"
	"time"

	"driverapi/internal/core/domain/model/kernel"
)

var (
	ErrRemittanceIsNotConstructed = errors.New("Remittance must be created via NewRemittance constructor")
	ErrAmountMustBePositive       = errors.New("remittance amount must be greater than 0")
)

// Remittance is cash a driver hands back to the business.
type Remittance struct {
	id        kernel.ID
	driverID  kernel.ID
	amount    kernel.Money
	note      *string
	proofPath *string
	createdAt time.Time

	isConstructed bool
}

// NewRemittance builds a remittance that has not been stored yet.
func NewRemittance(driverID kernel.ID, amount kernel.Money, note *string) (*Remittance, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, ErrAmountMustBePositive
	}

	return &Remittance{
		driverID:      driverID,
		amount:        amount,
		note:          note,
		isConstructed: true,
	}, nil
}

// RestoreRemittance rebuilds a stored remittance.
func RestoreRemittance(
	id, driverID kernel.ID,
	amount kernel.Money,
	note, proofPath *string,
	createdAt time.Time,
) *Remittance {
	return &Remittance{
		id:            id,
		driverID:      driverID,
		amount:        amount,
		note:          note,
		proofPath:     proofPath,
		createdAt:     createdAt,
		isConstructed: true,
	}
}

func (r *Remittance) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRemittanceIsNotConstructed
	}
	return nil
}

// AttachProof records the stored receipt image path. Empty paths are ignored.
func (r *Remittance) AttachProof(path string) {
	if path == "" {
		return
	}
	r.proofPath = &path
}

func (r *Remittance) ID() kernel.ID {
	return r.id
}

func (r *Remittance) DriverID() kernel.ID {
	return r.driverID
}

func (r *Remittance) Amount() kernel.Money {
	return r.amount
}

func (r *Remittance) Note() *string {
	return r.note
}

func (r *Remittance) ProofPath() *string {
	return r.proofPath
}

func (r *Remittance) CreatedAt() time.Time {
	return r.createdAt
}

// Totals is collected versus remitted cash for one period.
type Totals struct {
	Collected kernel.Money
	Remitted  kernel.Money
}

// CashInHand is what the driver still holds; it never goes below zero.
func (t Totals) CashInHand() kernel.Money {
	return t.Collected.Sub(t.Remitted)
}

// Summary is the driver's cash position today and across all time.
type Summary struct {
	Today   Totals
	AllTime Totals
	Recent  []*Remittance
}
