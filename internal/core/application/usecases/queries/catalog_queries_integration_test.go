package queries_test

import (
	"context"
	"testing"

	"fulfilment/internal/core/application/usecases/queries"
	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/pgtest"

	"github.com/stretchr/testify/suite"
)

type CatalogQueriesTestSuite struct {
	suite.Suite
	database *pgtest.Database
}

func (suite *CatalogQueriesTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *CatalogQueriesTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *CatalogQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
}

func (suite *CatalogQueriesTestSuite) TestGetProduct() {
	query, err := queries.NewGetProductQuery(2)
	suite.Require().NoError(err)

	got, err := queries.NewGetProductQueryHandler(suite.database.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(queries.ProductResponse{ID: 2, Name: "KALLAX", Stock: 5}, got)
}

func (suite *CatalogQueriesTestSuite) TestGetProduct_Unknown() {
	query, err := queries.NewGetProductQuery(404)
	suite.Require().NoError(err)

	_, err = queries.NewGetProductQueryHandler(suite.database.DB).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogQueriesTestSuite) TestGetAllProducts_OrderedByName() {
	got, err := queries.NewGetAllProductsQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewGetAllProductsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(got, 3)
	suite.Equal([]string{"BESTÅ", "KALLAX", "TONSTAD"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func (suite *CatalogQueriesTestSuite) TestGetStore() {
	query, err := queries.NewGetStoreQuery(1)
	suite.Require().NoError(err)

	got, err := queries.NewGetStoreQueryHandler(suite.database.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(queries.StoreResponse{ID: 1, Name: "TONSTAD", QuantityProductsInStock: 10}, got)
}

func (suite *CatalogQueriesTestSuite) TestGetStore_Unknown() {
	query, err := queries.NewGetStoreQuery(404)
	suite.Require().NoError(err)

	_, err = queries.NewGetStoreQueryHandler(suite.database.DB).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogQueriesTestSuite) TestGetAllStores_IncludesNewRows() {
	suite.Require().NoError(suite.database.DB.Exec(
		"INSERT INTO stores (name, quantity_products_in_stock) VALUES ('ALMHULT', 2)",
	).Error)

	got, err := queries.NewGetAllStoresQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewGetAllStoresQuery())

	suite.Require().NoError(err)
	suite.Require().Len(got, 4)
	suite.Equal("ALMHULT", got[0].Name)
	suite.Greater(got[0].ID, int64(3))
}

func TestCatalogQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogQueriesTestSuite))
}
