package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfilment/internal/adapters/out/locationdirectory"
	"fulfilment/internal/core/application/usecases/queries"
	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/pgtest"

	"github.com/stretchr/testify/suite"
)

type FulfillmentAndLocationQueriesTestSuite struct {
	suite.Suite
	database *pgtest.Database
}

func (suite *FulfillmentAndLocationQueriesTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *FulfillmentAndLocationQueriesTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *FulfillmentAndLocationQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
}

func (suite *FulfillmentAndLocationQueriesTestSuite) link(productID, storeID int64, code string) {
	suite.Require().NoError(suite.database.DB.Exec(`
		INSERT INTO fulfillments (id, product_id, store_id, warehouse_code)
		VALUES (gen_random_uuid(), ?, ?, ?)
	`, productID, storeID, code).Error)
}

func (suite *FulfillmentAndLocationQueriesTestSuite) warehouse(code, loc string, capacity int, archived bool) {
	var archivedAt *time.Time
	if archived {
		at := time.Now().UTC()
		archivedAt = &at
	}
	suite.Require().NoError(suite.database.DB.Exec(`
		INSERT INTO warehouses (id, business_unit_code, location, capacity, stock, created_at, archived_at)
		VALUES (gen_random_uuid(), ?, ?, ?, 0, now(), ?)
	`, code, loc, capacity, archivedAt).Error)
}

func (suite *FulfillmentAndLocationQueriesTestSuite) TestGetAllFulfillments_Ordered() {
	suite.link(2, 1, "MWH.001")
	suite.link(1, 2, "MWH.012")
	suite.link(1, 1, "MWH.023")
	suite.link(1, 1, "MWH.001")

	got, err := queries.NewGetAllFulfillmentsQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewGetAllFulfillmentsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(got, 4)
	suite.Equal([]string{"MWH.001", "MWH.023", "MWH.012", "MWH.001"}, []string{
		got[0].WarehouseCode, got[1].WarehouseCode, got[2].WarehouseCode, got[3].WarehouseCode,
	})
	suite.Equal(int64(2), got[3].ProductID)
	suite.NoError(got[0].ID.Validate())
}

func (suite *FulfillmentAndLocationQueriesTestSuite) TestGetFulfillmentsForProduct() {
	suite.link(1, 1, "MWH.001")
	suite.link(2, 1, "MWH.001")
	suite.link(2, 3, "MWH.012")

	query, err := queries.NewGetFulfillmentsForProductQuery(2)
	suite.Require().NoError(err)

	got, err := queries.NewGetAllFulfillmentsQueryHandler(suite.database.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	for _, f := range got {
		suite.Equal(int64(2), f.ProductID)
	}

	unknown, _ := queries.NewGetFulfillmentsForProductQuery(99)
	none, err := queries.NewGetAllFulfillmentsQueryHandler(suite.database.DB).Handle(context.Background(), unknown)
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *FulfillmentAndLocationQueriesTestSuite) TestGetLocationUtilization() {
	suite.warehouse("MWH.012", "AMSTERDAM-001", 50, false)
	suite.warehouse("MWH.013", "AMSTERDAM-001", 20, false)
	suite.warehouse("MWH.014", "AMSTERDAM-001", 25, true)
	handler := queries.NewGetLocationUtilizationQueryHandler(suite.database.DB, locationdirectory.NewDefaultDirectory())

	query, err := queries.NewGetLocationUtilizationQuery("AMSTERDAM-001")
	suite.Require().NoError(err)
	got, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(queries.LocationUtilizationResponse{
		Identification:        "AMSTERDAM-001",
		MaxNumberOfWarehouses: 5,
		MaxCapacity:           100,
		ActiveWarehouses:      2,
		UsedCapacity:          70,
	}, got)

	empty, _ := queries.NewGetLocationUtilizationQuery("HELMOND-001")
	got, err = handler.Handle(context.Background(), empty)
	suite.Require().NoError(err)
	suite.Zero(got.ActiveWarehouses)
	suite.Zero(got.UsedCapacity)
	suite.Equal(45, got.MaxCapacity)
}

func (suite *FulfillmentAndLocationQueriesTestSuite) TestGetLocationUtilization_UnknownLocation() {
	handler := queries.NewGetLocationUtilizationQueryHandler(suite.database.DB, locationdirectory.NewDefaultDirectory())
	query, _ := queries.NewGetLocationUtilizationQuery("ROTTERDAM-001")

	_, err := handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *FulfillmentAndLocationQueriesTestSuite) TestGetAllLocationUtilizations() {
	suite.warehouse("MWH.001", "ZWOLLE-001", 40, false)
	suite.warehouse("MWH.666", "NOWHERE-001", 10, false)
	directory := locationdirectory.NewDefaultDirectory()
	handler := queries.NewGetLocationUtilizationQueryHandler(suite.database.DB, directory)

	got, err := handler.HandleAll(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(got, len(directory.All()))
	for _, u := range got {
		suite.NotEqual("NOWHERE-001", u.Identification)
		if u.Identification == "ZWOLLE-001" {
			suite.Equal(1, u.ActiveWarehouses)
			suite.Equal(40, u.UsedCapacity)
			suite.True(u.IsFull())
		}
	}
}

func TestFulfillmentAndLocationQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(FulfillmentAndLocationQueriesTestSuite))
}
