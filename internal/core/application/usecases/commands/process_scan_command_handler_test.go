package commands_test

import (
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewProcessScanCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		cmd, err := commands.NewProcessScanCommand(
			kernel.NewUUID(), testTrackingNumber(t), "ARRIVE", "hub-operator-7", "", time.Now())

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "ARRIVE", cmd.RawScanType())
	})

	t.Run("should reject an unconstructed scan event id", func(t *testing.T) {
		_, err := commands.NewProcessScanCommand(
			kernel.UUID{}, testTrackingNumber(t), "ARRIVE", "", "", time.Now())

		require.Error(t, err)
	})

	t.Run("should reject an empty raw scan type", func(t *testing.T) {
		_, err := commands.NewProcessScanCommand(
			kernel.NewUUID(), testTrackingNumber(t), "", "", "", time.Now())

		require.ErrorIs(t, err, commands.ErrRawScanTypeIsRequired)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.ProcessScanCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrProcessScanCommandIsNotConstructed)
	})
}

func TestProcessScanCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := shipmentInStatus(t, shipment.PickedUp)
	cmd, err := commands.NewProcessScanCommand(
		kernel.NewUUID(), aggregate.TrackingNumber(), "ARRIVE", "hub-operator-7", "", time.Now())
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("GetByTrackingNumber", mock.Anything, aggregate.TrackingNumber()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessScanCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.PickedUp, result.PriorStatus)
	assert.Equal(t, shipment.AtOriginHub, result.NewStatus)
	assert.False(t, result.Informational)
	assert.Equal(t, shipment.AtOriginHub, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProcessScanCommandHandler_Handle_UnrecognizedScanType(t *testing.T) {
	ctx := t.Context()
	aggregate := shipmentInStatus(t, shipment.PickedUp)
	cmd, err := commands.NewProcessScanCommand(
		kernel.NewUUID(), aggregate.TrackingNumber(), "TELEPORT", "", "", time.Now())
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("GetByTrackingNumber", mock.Anything, aggregate.TrackingNumber()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessScanCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Informational)
	assert.Equal(t, shipment.PickedUp, result.NewStatus)
	assert.Equal(t, shipment.PickedUp, aggregate.Status())

	entry, ok := aggregate.LastHistoryEntry()
	require.True(t, ok)
	assert.Contains(t, entry.Note(), "TELEPORT")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProcessScanCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	// LOAD resolves to Bagged, which is not reachable straight from PickedUp.
	aggregate := shipmentInStatus(t, shipment.PickedUp)
	cmd, err := commands.NewProcessScanCommand(
		kernel.NewUUID(), aggregate.TrackingNumber(), "LOAD", "", "", time.Now())
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("GetByTrackingNumber", mock.Anything, aggregate.TrackingNumber()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessScanCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, shipment.ErrIllegalTransition)
	assert.Equal(t, shipment.PickedUp, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProcessScanCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockShipmentUoWFactory)

	h := commands.NewProcessScanCommandHandler(factory)
	_, err := h.Handle(ctx, commands.ProcessScanCommand{})

	require.Error(t, err)
	factory.AssertExpectations(t)
}

func TestProcessScanCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewProcessScanCommand(
		kernel.NewUUID(), testTrackingNumber(t), "ARRIVE", "", "", time.Now())
	require.NoError(t, err)

	uow := new(MockShipmentUoW)
	factory := new(MockShipmentUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewProcessScanCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
}
