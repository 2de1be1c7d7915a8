package http_test

import (
	"context"

	"driverapi/internal/core/application/usecases/commands"
	"driverapi/internal/core/application/usecases/queries"
	"driverapi/internal/core/domain/model/cash"
	"driverapi/internal/core/domain/model/driver"

	"github.com/stretchr/testify/mock"
)

type MockStatusUpdater struct{ mock.Mock }

func (m *MockStatusUpdater) Handle(
	ctx context.Context,
	command commands.UpdateDeliveryStatusCommand,
) (commands.UpdateDeliveryStatusResult, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(commands.UpdateDeliveryStatusResult), args.Error(1)
}

type MockProofPhotoUploader struct{ mock.Mock }

func (m *MockProofPhotoUploader) Handle(ctx context.Context, command commands.UploadProofPhotosCommand) ([]string, error) {
	args := m.Called(ctx, command)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockSignatureUploader struct{ mock.Mock }

func (m *MockSignatureUploader) Handle(ctx context.Context, command commands.UploadSignatureCommand) (string, error) {
	args := m.Called(ctx, command)
	return args.String(0), args.Error(1)
}

type MockRemittanceSubmitter struct{ mock.Mock }

func (m *MockRemittanceSubmitter) Handle(ctx context.Context, command commands.SubmitRemittanceCommand) (*cash.Remittance, error) {
	args := m.Called(ctx, command)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cash.Remittance), args.Error(1)
}

type MockActiveOrdersLister struct{ mock.Mock }

func (m *MockActiveOrdersLister) Handle(
	ctx context.Context,
	query queries.GetActiveOrdersQuery,
) ([]queries.GetActiveOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetActiveOrdersQueryResponse), args.Error(1)
}

type MockProfileReader struct{ mock.Mock }

func (m *MockProfileReader) Handle(
	ctx context.Context,
	query queries.GetDriverProfileQuery,
) (queries.GetDriverProfileQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetDriverProfileQueryResponse), args.Error(1)
}

type MockCashSummaryReader struct{ mock.Mock }

func (m *MockCashSummaryReader) Handle(ctx context.Context, query queries.GetCashSummaryQuery) (cash.Summary, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(cash.Summary), args.Error(1)
}

type MockPinger struct{ mock.Mock }

func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockDriverAuthenticator struct{ mock.Mock }

func (m *MockDriverAuthenticator) Handle(ctx context.Context, query queries.AuthenticateDriverQuery) (*driver.Driver, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}
