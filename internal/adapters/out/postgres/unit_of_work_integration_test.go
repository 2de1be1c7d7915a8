package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	postgres_adapter "driverapi/internal/adapters/out/postgres"
	"driverapi/internal/adapters/out/postgres/pgtest"
	"driverapi/internal/adapters/out/postgres/schema"
	"driverapi/internal/core/application/usecases/commands"
	"driverapi/internal/core/domain/model/driver"
	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/order"
	"driverapi/internal/core/domain/model/proof"
	"driverapi/internal/core/ports"
	"driverapi/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type noCapture struct{}

func (noCapture) Capture(context.Context, proof.Kind, kernel.ID, int, proof.Image) string {
	return ""
}

func (noCapture) Discard(context.Context, ...string) {}

type noPublisher struct{}

func (noPublisher) PublishOrderStatusChanged(context.Context, ports.OrderStatusChanged) error {
	return nil
}

type orderSnapshot struct {
	OrderStatus       string
	DriverStatus      *string
	AssignedDriverID  *int64
	PickedUpAt        *time.Time
	PaymentReceivedAt *time.Time
	PaymentReceivedBy *string
}

// UnitOfWorkIntegrationTestSuite runs the unit of work and the status workflow
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
	handler   commands.UpdateDeliveryStatusCommandHandler
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, db, err := pgtest.Start(ctx)
	if container != nil {
		suite.container = container
	}
	suite.Require().NoError(err)
	suite.db = db

	caps, err := schema.Probe(ctx, db)
	suite.Require().NoError(err)
	suite.Require().Equal(schema.Full(), caps)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, schema.NewRegistry(caps), time.Second)

	var uowFactory commands.DeliveryUoWFactory = deliveryFactory{suite.factory}
	suite.handler = commands.NewUpdateDeliveryStatusCommandHandler(
		uowFactory, noCapture{}, noPublisher{}, slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.Require().NoError(suite.db.Exec(`
		INSERT INTO drivers (driver_id, name, api_token) VALUES (1, 'Ana', 'tok-ana'), (2, 'Ben', 'tok-ben');
		INSERT INTO orders (order_id, order_type, order_status) VALUES
			(10, 'Delivery', 'Pending'),
			(11, 'Pick-Up', 'Pending'),
			(12, NULL, 'Ready to deliver');
		INSERT INTO order_address (order_id, street, city) VALUES (12, 'Rizal St', 'Makati');
		INSERT INTO payment (order_id, payment_method, payment_status, payment_amount) VALUES
			(10, 'COD', 'Unpaid', 0),
			(12, 'card', 'Unpaid', 40);
	`).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

type deliveryFactory struct {
	f *postgres_adapter.GormUnitOfWorkFactory
}

func (d deliveryFactory) Create() commands.DeliveryUoW {
	return d.f.Create()
}

func (suite *UnitOfWorkIntegrationTestSuite) driver(id int64, name string) *driver.Driver {
	d, err := driver.RestoreDriver(kernel.ID(id), name, nil)
	suite.Require().NoError(err)
	return d
}

func (suite *UnitOfWorkIntegrationTestSuite) update(orderID int64, status string, drv *driver.Driver, amount *float64) (commands.UpdateDeliveryStatusResult, error) {
	cmd, err := commands.NewUpdateDeliveryStatusCommand(kernel.ID(orderID), status, drv, amount, proof.Image{})
	suite.Require().NoError(err)
	return suite.handler.Handle(context.Background(), cmd)
}

func (suite *UnitOfWorkIntegrationTestSuite) snapshot(orderID int64) orderSnapshot {
	var s orderSnapshot
	suite.Require().NoError(suite.db.Raw(`
		SELECT order_status, driver_status, assigned_driver_id, picked_up_at, payment_received_at, payment_received_by
		FROM orders WHERE order_id = ?`, orderID).Scan(&s).Error)
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) count(query string, args ...any) int64 {
	var n int64
	suite.Require().NoError(suite.db.Raw(query, args...).Scan(&n).Error)
	return n
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	affected, err := uow.OrderRepository().UpdateStatus(ctx, 10, order.StatusDelivered, order.Delivered)
	suite.Require().NoError(err)
	suite.Equal(int64(1), affected)

	suite.Require().NoError(uow.Rollback(ctx))
	suite.Equal("Pending", suite.snapshot(10).OrderStatus)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_LockTimeoutIsTransient() {
	ctx := context.Background()

	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	defer func() {
		_ = holder.Rollback(ctx)
	}()
	_, err := holder.OrderRepository().GetForUpdate(ctx, 10)
	suite.Require().NoError(err)

	waiter := suite.factory.Create()
	suite.Require().NoError(waiter.Begin(ctx))
	defer func() {
		_ = waiter.Rollback(ctx)
	}()

	started := time.Now()
	_, err = waiter.OrderRepository().GetForUpdate(ctx, 10)

	suite.Require().ErrorIs(err, errs.ErrTransient)
	suite.Less(time.Since(started), 5*time.Second)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateStatus_Rejected_LeavesOrderUntouched() {
	before := suite.snapshot(10)

	result, err := suite.update(10, "rejected", suite.driver(1, "Ana"), nil)

	suite.Require().NoError(err)
	suite.True(result.NoChange)
	suite.Equal(before, suite.snapshot(10))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateStatus_PickupOrder_NotApplicable() {
	before := suite.snapshot(11)

	_, err := suite.update(11, "delivered", suite.driver(1, "Ana"), nil)

	suite.Require().ErrorIs(err, commands.ErrOrderNotApplicable)
	suite.Equal(before, suite.snapshot(11))
	suite.Zero(suite.count("SELECT count(*) FROM order_status_history"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateStatus_UnknownOrder() {
	_, err := suite.update(999, "accepted", suite.driver(1, "Ana"), nil)

	suite.Require().ErrorIs(err, commands.ErrOrderNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateStatus_AssignmentIsFirstWriteWins() {
	result, err := suite.update(10, "accepted", suite.driver(1, "Ana"), nil)
	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Affected.Assignment)

	result, err = suite.update(10, "on_the_way", suite.driver(2, "Ben"), nil)
	suite.Require().NoError(err)
	suite.Zero(result.Affected.Assignment)

	s := suite.snapshot(10)
	suite.Require().NotNil(s.AssignedDriverID)
	suite.Equal(int64(1), *s.AssignedDriverID)
	suite.Equal("On the way", s.OrderStatus)
	suite.Equal("on_the_way", *s.DriverStatus)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateStatus_RepeatedStatusReportsNoRows() {
	_, err := suite.update(10, "on_the_way", suite.driver(1, "Ana"), nil)
	suite.Require().NoError(err)

	result, err := suite.update(10, "on_the_way", suite.driver(1, "Ana"), nil)

	suite.Require().NoError(err)
	suite.Zero(result.Affected.Status)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateStatus_PickedUp() {
	result, err := suite.update(10, "picked_up", suite.driver(1, "Ana"), nil)

	suite.Require().NoError(err)
	suite.Equal(order.StatusProcessing, result.Current.Status)
	suite.NotNil(result.Current.PickedUpAt)
	suite.Equal(int64(1), suite.count("SELECT count(*) FROM order_status_history WHERE order_id = 10 AND event = 'picked_up'"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateStatus_Delivered_CashOnDelivery() {
	amount := 25.00

	result, err := suite.update(10, "delivered", suite.driver(1, "Ana"), &amount)

	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Affected.Payment)
	suite.Equal(order.StatusDelivered, result.Current.Status)
	suite.Require().NotNil(result.Current.PaymentReceivedBy)
	suite.Equal("Driver #1 - Ana", *result.Current.PaymentReceivedBy)

	var paid struct {
		PaymentStatus string
		PaymentAmount float64
	}
	suite.Require().NoError(suite.db.Raw("SELECT payment_status, payment_amount FROM payment WHERE order_id = 10").Scan(&paid).Error)
	suite.Equal("Paid", paid.PaymentStatus)
	suite.InDelta(25.00, paid.PaymentAmount, 0.001)

	suite.Equal(int64(1), suite.count("SELECT count(*) FROM order_payment_receipt WHERE order_id = 10 AND status = 'verified'"))
	suite.Equal(int64(1), suite.count("SELECT count(*) FROM notifications WHERE message = 'Driver Ana confirmed payment for Order #10'"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateStatus_Delivered_TwiceKeepsOneReceipt() {
	_, err := suite.update(12, "delivered", suite.driver(1, "Ana"), nil)
	suite.Require().NoError(err)
	firstStamp := suite.snapshot(12).PaymentReceivedAt

	result, err := suite.update(12, "delivered", suite.driver(2, "Ben"), nil)
	suite.Require().NoError(err)

	suite.Zero(result.Affected.Receipt)
	suite.Zero(result.Affected.PaymentStamp)
	suite.Equal(int64(1), suite.count("SELECT count(*) FROM order_payment_receipt WHERE order_id = 12"))
	suite.Equal(firstStamp, suite.snapshot(12).PaymentReceivedAt)
	suite.Equal("Driver #1 - Ana", *suite.snapshot(12).PaymentReceivedBy)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateStatus_Delivered_CardPaymentUntouched() {
	amount := 25.00

	result, err := suite.update(12, "delivered", suite.driver(1, "Ana"), &amount)

	suite.Require().NoError(err)
	suite.Zero(result.Affected.Payment)
	suite.Equal(int64(1), suite.count("SELECT count(*) FROM payment WHERE order_id = 12 AND payment_status = 'Unpaid' AND payment_amount = 40"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateStatus_Delivered_MixedPaymentsOnlyCashRowPaid() {
	suite.Require().NoError(suite.db.Exec(`
		INSERT INTO orders (order_id, order_type, order_status) VALUES (13, 'Delivery', 'On the way');
		INSERT INTO payment (order_id, payment_method, payment_status, payment_amount) VALUES
			(13, 'card', 'Unpaid', 40),
			(13, 'COD', 'Unpaid', 40);
	`).Error)
	amount := 25.00

	result, err := suite.update(13, "delivered", suite.driver(1, "Ana"), &amount)

	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Affected.Payment)
	suite.Equal(int64(1), suite.count("SELECT count(*) FROM payment WHERE order_id = 13 AND payment_method = 'COD' AND payment_status = 'Paid' AND payment_amount = 25"))
	suite.Equal(int64(1), suite.count("SELECT count(*) FROM payment WHERE order_id = 13 AND payment_method = 'card' AND payment_status = 'Unpaid' AND payment_amount = 40"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateStatus_FailureRollsBackEverything() {
	suite.Require().NoError(suite.db.Exec("ALTER TABLE notifications RENAME TO notifications_off").Error)
	defer func() {
		suite.Require().NoError(suite.db.Exec("ALTER TABLE notifications_off RENAME TO notifications").Error)
	}()
	before := suite.snapshot(10)

	_, err := suite.update(10, "delivered", suite.driver(1, "Ana"), nil)

	suite.Require().ErrorIs(err, commands.ErrPersistenceFailure)
	suite.Equal(before, suite.snapshot(10))
	suite.Zero(suite.count("SELECT count(*) FROM order_payment_receipt"))
	suite.Zero(suite.count("SELECT count(*) FROM order_status_history"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateStatus_ConcurrentCallsSerialize() {
	amount := 25.00
	drivers := []*driver.Driver{suite.driver(1, "Ana"), suite.driver(2, "Ben")}

	var wg sync.WaitGroup
	errCh := make(chan error, len(drivers))
	for _, d := range drivers {
		wg.Add(1)
		go func(d *driver.Driver) {
			defer wg.Done()
			_, err := suite.update(10, "delivered", d, &amount)
			errCh <- err
		}(d)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		suite.Require().NoError(err)
	}

	s := suite.snapshot(10)
	suite.Require().NotNil(s.AssignedDriverID)
	suite.Require().NotNil(s.PaymentReceivedBy)
	winner := map[int64]string{1: "Driver #1 - Ana", 2: "Driver #2 - Ben"}[*s.AssignedDriverID]
	suite.Equal(winner, *s.PaymentReceivedBy)
	suite.Equal(int64(1), suite.count("SELECT count(*) FROM order_payment_receipt WHERE order_id = 10"))
	suite.Equal(int64(2), suite.count("SELECT count(*) FROM order_status_history WHERE order_id = 10"))
}

func TestUnitOfWorkIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
