// Package postgres provides the GORM-based Unit of Work of the driver API.
//
// A unit of work wraps one database transaction. Begin bounds how long any
// statement may wait for a row lock, so concurrent updates of the same order
// serialize without hanging: a waiter that exceeds the bound fails with a
// transient error instead.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// ... further writes in the same transaction
//
//	return uow.Commit(ctx)
//
// A unit of work takes one snapshot of the schema capabilities, at Begin or at
// the first repository it hands out, and binds every repository to it until
// Commit or Rollback. A refresh never changes the column set mid-transaction.
package postgres

import (
	"context"
	"fmt"
	"time"

	"driverapi/internal/adapters/out/postgres/evidencerepo"
	"driverapi/internal/adapters/out/postgres/orderrepo"
	"driverapi/internal/adapters/out/postgres/paymentrepo"
	"driverapi/internal/adapters/out/postgres/pgerr"
	"driverapi/internal/adapters/out/postgres/remittancerepo"
	"driverapi/internal/adapters/out/postgres/schema"
	"driverapi/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db          *gorm.DB
	registry    *schema.Registry
	lockTimeout time.Duration
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// A zero lockTimeout leaves the server default in place.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, registry, 5*time.Second)
func NewGormUnitOfWorkFactory(db *gorm.DB, registry *schema.Registry, lockTimeout time.Duration) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:          db,
		registry:    registry,
		lockTimeout: lockTimeout,
	}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:          f.db,
		registry:    f.registry,
		lockTimeout: f.lockTimeout,
	}
}

// GormUnitOfWork coordinates one database transaction across repositories.
type GormUnitOfWork struct {
	db          *gorm.DB
	tx          *gorm.DB
	registry    *schema.Registry
	caps        *schema.Capabilities
	lockTimeout time.Duration
}

// Begin starts the transaction and applies the lock wait bound.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerr.Wrap("begin transaction", tx.Error)
	}

	if uow.lockTimeout > 0 {
		// SET does not accept bind parameters; the value is an integer.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", uow.lockTimeout.Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			_ = tx.Rollback().Error
			return pgerr.Wrap("set lock timeout", err)
		}
	}

	uow.tx = tx
	uow.capabilities()
	return nil
}

// Commit finalizes the transaction.
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.caps = nil
	return pgerr.Wrap("commit", err)
}

// Rollback discards the transaction. After Commit it returns gorm.ErrInvalidTransaction,
// which deferred rollbacks ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.caps = nil
	return err
}

// conn returns the active transaction, or the pool when none is active.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// capabilities returns the snapshot of this unit of work, taking it on first use.
func (uow *GormUnitOfWork) capabilities() schema.Capabilities {
	if uow.caps == nil {
		caps := uow.registry.Load()
		uow.caps = &caps
	}
	return *uow.caps
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow.capabilities())
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn())
}

func (uow *GormUnitOfWork) EvidenceRepository() ports.EvidenceRepository {
	return evidencerepo.NewGormEvidenceRepository(uow.conn())
}

func (uow *GormUnitOfWork) RemittanceRepository() ports.RemittanceRepository {
	return remittancerepo.NewGormRemittanceRepository(uow.conn())
}
