package commands_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"driverapi/internal/core/application/capture"
	"driverapi/internal/core/application/usecases/commands"
	"driverapi/internal/core/domain/model/cash"
	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/proof"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitRemittanceCommand_RejectsNonPositiveAmounts(t *testing.T) {
	for _, amount := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		_, err := commands.NewSubmitRemittanceCommand(testDriver(t), amount, nil, proof.Image{})

		require.ErrorIs(t, err, cash.ErrAmountMustBePositive)
	}
}

func TestSubmitRemittanceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	remittances := new(MockRemittanceRepository)
	capturer := new(MockCapturer)
	note := "end of shift"
	receipt := photo(t, "receipt.jpg")

	cmd, err := commands.NewSubmitRemittanceCommand(testDriver(t), 150.5, &note, receipt)
	require.NoError(t, err)

	proofPath := "uploads/remittances/remit_7_1.jpg"
	stored := cash.RestoreRemittance(31, 7, kernel.MoneyFromCents(15050), &note, &proofPath, time.Now())

	capturer.On("Capture", ctx, proof.KindRemittance, kernel.ID(7), capture.NoIndex, receipt).Return(proofPath).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RemittanceRepository").Return(remittances).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	remittances.On("Add", ctx, mock.MatchedBy(func(r *cash.Remittance) bool {
		return r.DriverID() == 7 &&
			r.Amount().Cents() == 15050 &&
			r.ProofPath() != nil && *r.ProofPath() == proofPath &&
			r.Note() != nil && *r.Note() == note
	})).Return(stored, nil).Once()

	handler := commands.NewSubmitRemittanceCommandHandler(MockRemittanceUoWFactory{uow: uow}, capturer)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(31), result.ID())
	uow.AssertExpectations(t)
	remittances.AssertExpectations(t)
	capturer.AssertExpectations(t)
}

func TestSubmitRemittanceCommandHandler_Handle_ProofFailureKeepsRemittance(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	remittances := new(MockRemittanceRepository)
	capturer := new(MockCapturer)

	cmd, err := commands.NewSubmitRemittanceCommand(testDriver(t), 20, nil, proof.Image{})
	require.NoError(t, err)

	capturer.On("Capture", ctx, proof.KindRemittance, kernel.ID(7), capture.NoIndex, proof.Image{}).Return("").Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RemittanceRepository").Return(remittances).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	remittances.On("Add", ctx, mock.MatchedBy(func(r *cash.Remittance) bool {
		return r.ProofPath() == nil
	})).Return(cash.RestoreRemittance(32, 7, kernel.MoneyFromCents(2000), nil, nil, time.Now()), nil).Once()

	handler := commands.NewSubmitRemittanceCommandHandler(MockRemittanceUoWFactory{uow: uow}, capturer)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	remittances.AssertExpectations(t)
}

func TestSubmitRemittanceCommandHandler_Handle_FailedInsertRemovesProof(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	remittances := new(MockRemittanceRepository)
	capturer := new(MockCapturer)
	receipt := photo(t, "receipt.jpg")

	cmd, err := commands.NewSubmitRemittanceCommand(testDriver(t), 20, nil, receipt)
	require.NoError(t, err)

	proofPath := "uploads/remittances/remit_7_1.jpg"
	capturer.On("Capture", ctx, proof.KindRemittance, kernel.ID(7), capture.NoIndex, receipt).Return(proofPath).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RemittanceRepository").Return(remittances).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	remittances.On("Add", ctx, mock.Anything).Return(nil, errors.New("connection reset")).Once()
	capturer.On("Discard", ctx, []string{proofPath}).Once()

	handler := commands.NewSubmitRemittanceCommandHandler(MockRemittanceUoWFactory{uow: uow}, capturer)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "connection reset")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	capturer.AssertExpectations(t)
}
