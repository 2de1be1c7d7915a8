package commands_test

import (
	"context"
	"time"

	"driverapi/internal/core/application/usecases/commands"
	"driverapi/internal/core/domain/model/cash"
	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/order"
	"driverapi/internal/core/domain/model/payment"
	"driverapi/internal/core/domain/model/proof"
	"driverapi/internal/core/domain/services"
	"driverapi/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.ID,
	status order.BackendStatus,
	driverStatus order.DriverStatus,
) (int64, error) {
	args := m.Called(ctx, id, status, driverStatus)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) AssignDriverIfAbsent(ctx context.Context, id kernel.ID, driverID kernel.ID) (int64, error) {
	args := m.Called(ctx, id, driverID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) MarkPickedUp(ctx context.Context, id kernel.ID, at time.Time) (int64, error) {
	args := m.Called(ctx, id, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) StampPaymentReceived(ctx context.Context, id kernel.ID, at time.Time, by string) (int64, error) {
	args := m.Called(ctx, id, at, by)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) GetByOrder(ctx context.Context, orderID kernel.ID) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

type MockEvidenceRepository struct{ mock.Mock }

func (m *MockEvidenceRepository) UpsertReceipt(ctx context.Context, r ports.Receipt) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEvidenceRepository) AddProofPhoto(
	ctx context.Context,
	orderID kernel.ID,
	path string,
	at time.Time,
	uploadedBy kernel.ID,
) (int64, error) {
	args := m.Called(ctx, orderID, path, at, uploadedBy)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEvidenceRepository) UpsertSignature(
	ctx context.Context,
	orderID kernel.ID,
	path string,
	at time.Time,
	signedBy kernel.ID,
) (int64, error) {
	args := m.Called(ctx, orderID, path, at, signedBy)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEvidenceRepository) AppendHistory(ctx context.Context, orderID kernel.ID, event string, at time.Time) (int64, error) {
	args := m.Called(ctx, orderID, event, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEvidenceRepository) AddNotification(ctx context.Context, n services.Notification, at time.Time) (int64, error) {
	args := m.Called(ctx, n, at)
	return args.Get(0).(int64), args.Error(1)
}

type MockRemittanceRepository struct{ mock.Mock }

func (m *MockRemittanceRepository) Add(ctx context.Context, r *cash.Remittance) (*cash.Remittance, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cash.Remittance), args.Error(1)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) EvidenceRepository() ports.EvidenceRepository {
	args := m.Called()
	return args.Get(0).(ports.EvidenceRepository)
}

func (m *MockUoW) RemittanceRepository() ports.RemittanceRepository {
	args := m.Called()
	return args.Get(0).(ports.RemittanceRepository)
}

type MockDeliveryUoWFactory struct{ uow *MockUoW }

func (f MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f.uow
}

type MockEvidenceUoWFactory struct{ uow *MockUoW }

func (f MockEvidenceUoWFactory) Create() commands.EvidenceUoW {
	return f.uow
}

type MockRemittanceUoWFactory struct{ uow *MockUoW }

func (f MockRemittanceUoWFactory) Create() commands.RemittanceUoW {
	return f.uow
}

type MockCapturer struct{ mock.Mock }

func (m *MockCapturer) Capture(ctx context.Context, kind proof.Kind, ownerID kernel.ID, index int, img proof.Image) string {
	args := m.Called(ctx, kind, ownerID, index, img)
	return args.String(0)
}

func (m *MockCapturer) Discard(ctx context.Context, relPaths ...string) {
	m.Called(ctx, relPaths)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
