package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/customsrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/customs"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPendingClearanceQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetPendingClearanceQueryHandler
	trackingSeq int
}

func (suite *GetPendingClearanceQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.HistoryEntryDTO{},
		&customsrepo.CaseDTO{},
	))

	suite.handler = queries.NewGetPendingClearanceQueryHandler(db)
}

func (suite *GetPendingClearanceQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetPendingClearanceQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE shipments, shipment_history, customs_cases").Error,
	)
}

// seedShipment persists a shipment bound for the given destination branch and
// returns it. Tracking numbers are generated sequentially within the suite.
func (suite *GetPendingClearanceQueryHandlerTestSuite) seedShipment(
	destinationBranchID kernel.UUID,
) *shipment.Shipment {
	suite.trackingSeq++
	tn, err := shipment.NewTrackingNumber(fmt.Sprintf("LG-2026-%06d", suite.trackingSeq))
	suite.Require().NoError(err)

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(),
		tn,
		kernel.NewUUID(),
		destinationBranchID,
		kernel.NewUUID(),
		decimal.NewFromFloat(2.5),
	)
	suite.Require().NoError(err)

	repo := shipmentrepo.NewGormShipmentRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate
}

// seedCase persists a customs case with an explicit sub-status and opening time.
func (suite *GetPendingClearanceQueryHandlerTestSuite) seedCase(
	shipmentID kernel.UUID,
	subStatus customs.SubStatus,
	openedAt time.Time,
	closedAt *time.Time,
) *customs.Case {
	aggregate, err := customs.RestoreCase(
		kernel.NewUUID(),
		shipmentID,
		subStatus,
		"held for test",
		nil,
		nil,
		false,
		false,
		"",
		decimal.Zero,
		decimal.Zero,
		decimal.Zero,
		"",
		"",
		openedAt,
		closedAt,
	)
	suite.Require().NoError(err)

	repo := customsrepo.NewGormCustomsCaseRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetPendingClearanceQueryHandlerTestSuite) findGroup(
	groups []queries.PendingClearanceGroup, branchID kernel.UUID,
) *queries.PendingClearanceGroup {
	for i := range groups {
		if groups[i].DestinationBranchID.IsEqual(branchID) {
			return &groups[i]
		}
	}
	return nil
}

func (suite *GetPendingClearanceQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetPendingClearanceQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPendingClearanceQueryHandlerTestSuite) TestHandle_GroupsByDestinationBranch() {
	branchA := kernel.NewUUID()
	branchB := kernel.NewUUID()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	shipmentA1 := suite.seedShipment(branchA)
	shipmentA2 := suite.seedShipment(branchA)
	shipmentB1 := suite.seedShipment(branchB)

	// The younger case is seeded first to prove ordering comes from opened_at.
	caseA2 := suite.seedCase(shipmentA2.ID(), customs.Pending, base.Add(2*time.Hour), nil)
	caseA1 := suite.seedCase(shipmentA1.ID(), customs.Held, base, nil)
	caseB1 := suite.seedCase(shipmentB1.ID(), customs.DutyRequired, base.Add(time.Hour), nil)

	query := queries.NewGetPendingClearanceQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	groupA := suite.findGroup(result, branchA)
	suite.Require().NotNil(groupA)
	suite.Require().Len(groupA.Cases, 2)
	suite.True(groupA.Cases[0].CaseID.IsEqual(caseA1.ID()), "Oldest case should come first")
	suite.True(groupA.Cases[1].CaseID.IsEqual(caseA2.ID()))
	suite.Equal(shipmentA1.TrackingNumber().String(), groupA.Cases[0].TrackingNumber)
	suite.Equal(customs.Held, groupA.Cases[0].SubStatus)
	suite.Equal("held for test", groupA.Cases[0].HoldReason)

	groupB := suite.findGroup(result, branchB)
	suite.Require().NotNil(groupB)
	suite.Require().Len(groupB.Cases, 1)
	suite.True(groupB.Cases[0].CaseID.IsEqual(caseB1.ID()))
	suite.Equal(customs.DutyRequired, groupB.Cases[0].SubStatus)
}

func (suite *GetPendingClearanceQueryHandlerTestSuite) TestHandle_ExcludesClosedCases() {
	branch := kernel.NewUUID()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	closed := base.Add(3 * time.Hour)

	openShipment := suite.seedShipment(branch)
	clearedShipment := suite.seedShipment(branch)
	rejectedShipment := suite.seedShipment(branch)

	openCase := suite.seedCase(openShipment.ID(), customs.UnderInspection, base, nil)
	suite.seedCase(clearedShipment.ID(), customs.Cleared, base, &closed)
	suite.seedCase(rejectedShipment.ID(), customs.Rejected, base, &closed)

	query := queries.NewGetPendingClearanceQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().Len(result[0].Cases, 1)
	suite.True(result[0].Cases[0].CaseID.IsEqual(openCase.ID()))
}

func (suite *GetPendingClearanceQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPendingClearanceQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetPendingClearanceQuery constructor")
}

func TestGetPendingClearanceQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingClearanceQueryHandlerTestSuite))
}

// mockAggregateTracker is a no-op tracker for seeding repositories in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
