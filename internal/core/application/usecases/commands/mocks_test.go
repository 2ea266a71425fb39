package commands_test

import (
	"context"
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/customs"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByTrackingNumber(
	ctx context.Context, trackingNumber shipment.TrackingNumber,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllInBag(
	ctx context.Context, bagID kernel.UUID,
) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, bagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockCustomsCaseRepository struct{ mock.Mock }

func (m *MockCustomsCaseRepository) Add(ctx context.Context, aggregate *customs.Case) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomsCaseRepository) Update(ctx context.Context, aggregate *customs.Case) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomsCaseRepository) Get(ctx context.Context, id kernel.UUID) (*customs.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customs.Case), args.Error(1)
}

func (m *MockCustomsCaseRepository) GetByShipment(_ context.Context, _ kernel.UUID) (*customs.Case, error) {
	return nil, errors.New("not implemented in mock")
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockCampaignReservations struct{ mock.Mock }

func (m *MockCampaignReservations) ReserveUsage(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockBookingUoW struct{ mock.Mock }

func (m *MockBookingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockBookingUoW) CampaignReservations() ports.CampaignReservations {
	args := m.Called()
	return args.Get(0).(ports.CampaignReservations)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockCustomsUoW struct{ mock.Mock }

func (m *MockCustomsUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomsUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomsUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomsUoW) CustomsCaseRepository() ports.CustomsCaseRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomsCaseRepository)
}

type MockCustomsUoWFactory struct{ mock.Mock }

func (m *MockCustomsUoWFactory) Create() commands.CustomsUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomsUoW)
}

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

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) CustomsCaseRepository() ports.CustomsCaseRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomsCaseRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRateCardCatalog struct{ mock.Mock }

func (m *MockRateCardCatalog) GetActiveRateCards(
	ctx context.Context, originZone, destinationZone string,
) ([]pricing.RateCard, error) {
	args := m.Called(ctx, originZone, destinationZone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.RateCard), args.Error(1)
}

func (m *MockRateCardCatalog) GetSurchargeRules(ctx context.Context) ([]pricing.SurchargeRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.SurchargeRule), args.Error(1)
}

type MockContractCatalog struct{ mock.Mock }

func (m *MockContractCatalog) GetActiveContract(
	ctx context.Context, customerID kernel.UUID,
) (*pricing.Contract, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Contract), args.Error(1)
}

type MockCampaignCatalog struct{ mock.Mock }

func (m *MockCampaignCatalog) GetByCode(ctx context.Context, code string) (*pricing.Campaign, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Campaign), args.Error(1)
}

func (m *MockCampaignCatalog) ReserveUsage(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func testTrackingNumber(t *testing.T) shipment.TrackingNumber {
	t.Helper()
	trackingNumber, err := shipment.NewTrackingNumber("LG-2026-000123")
	require.NoError(t, err)
	return trackingNumber
}

// shipmentInStatus builds a freshly booked shipment and walks it along the
// main line until it reaches the target status.
func shipmentInStatus(t *testing.T, target shipment.Status) *shipment.Shipment {
	t.Helper()

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(),
		testTrackingNumber(t),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		decimal.NewFromFloat(2.5),
	)
	require.NoError(t, err)

	mainLine := []shipment.Status{
		shipment.Booked,
		shipment.PickupScheduled,
		shipment.PickedUp,
		shipment.AtOriginHub,
		shipment.Bagged,
		shipment.LinehaulDeparted,
		shipment.LinehaulArrived,
		shipment.AtDestinationHub,
		shipment.OutForDelivery,
		shipment.Delivered,
	}
	for _, status := range mainLine {
		if aggregate.Status() == target {
			return aggregate
		}
		require.NoError(t, aggregate.TransitionTo(status, shipment.TransitionContext{
			Trigger: shipment.TriggerScan,
		}))
	}
	require.Equal(t, target, aggregate.Status())
	return aggregate
}
