package productrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"deliveryapi/internal/adapters/out/postgres/productrepo"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/product"
	"deliveryapi/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ProductRepositoryIntegrationTestSuite provides integration tests for
// ProductRepository using PostgreSQL containers.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) mustID(value int64) kernel.ID {
	id, err := kernel.NewID(value)
	suite.Require().NoError(err)
	return id
}

// addProduct persists a product and returns it with its assigned identifier.
func (suite *ProductRepositoryIntegrationTestSuite) addProduct(name, category string, restaurantID int64) *product.Product {
	p, err := product.NewProduct(name, category, suite.mustID(restaurantID))
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, p).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), p))
	return p
}

// makeUnavailable persists the product with available set to false.
func (suite *ProductRepositoryIntegrationTestSuite) makeUnavailable(p *product.Product) {
	suite.Require().NoError(p.MakeUnavailable())
	suite.tracker.On("TrackAggregate", p.ID(), p).Once()
	suite.Require().NoError(suite.repository.Update(context.Background(), p))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_AssignsStoreIdentifier() {
	p := suite.addProduct("Margherita", "Pizza", 5)

	suite.Require().NoError(p.ID().Validate())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_RoundTripsAllFields() {
	ctx := context.Background()
	p := suite.addProduct("Margherita", "Pizza", 5)

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(p))
	suite.Equal("Margherita", loaded.Name())
	suite.Equal("Pizza", loaded.Category())
	suite.True(loaded.IsAvailable())
	suite.True(loaded.RestaurantID().IsEqual(suite.mustID(5)))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), suite.mustID(999))

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAllByRestaurant_OrdersByName() {
	ctx := context.Background()
	suite.addProduct("Quattro Formaggi", "Pizza", 5)
	suite.addProduct("Margherita", "Pizza", 5)
	suite.addProduct("Feijoada", "Brazilian", 9)

	products, err := suite.repository.GetAllByRestaurant(ctx, suite.mustID(5))
	suite.Require().NoError(err)
	suite.Require().Len(products, 2)
	suite.Equal("Margherita", products[0].Name())
	suite.Equal("Quattro Formaggi", products[1].Name())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAvailabilityListings_SplitTheMenu() {
	ctx := context.Background()
	suite.addProduct("Margherita", "Pizza", 5)
	offMenu := suite.addProduct("Quattro Formaggi", "Pizza", 5)
	suite.makeUnavailable(offMenu)

	available, err := suite.repository.GetAllAvailableByRestaurant(ctx, suite.mustID(5))
	suite.Require().NoError(err)
	suite.Require().Len(available, 1)
	suite.Equal("Margherita", available[0].Name())

	unavailable, err := suite.repository.GetAllUnavailableByRestaurant(ctx, suite.mustID(5))
	suite.Require().NoError(err)
	suite.Require().Len(unavailable, 1)
	suite.Equal("Quattro Formaggi", unavailable[0].Name())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAllAvailableByRestaurantAndCategory() {
	ctx := context.Background()
	suite.addProduct("Margherita", "Pizza", 5)
	suite.addProduct("Tiramisu", "Dessert", 5)
	offMenu := suite.addProduct("Quattro Formaggi", "Pizza", 5)
	suite.makeUnavailable(offMenu)

	products, err := suite.repository.GetAllAvailableByRestaurantAndCategory(ctx, suite.mustID(5), "Pizza")
	suite.Require().NoError(err)
	suite.Require().Len(products, 1)
	suite.Equal("Margherita", products[0].Name())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestCountByRestaurantAndAvailability() {
	ctx := context.Background()
	suite.addProduct("Margherita", "Pizza", 5)
	suite.addProduct("Tiramisu", "Dessert", 5)
	offMenu := suite.addProduct("Quattro Formaggi", "Pizza", 5)
	suite.makeUnavailable(offMenu)

	count, err := suite.repository.CountByRestaurantAndAvailability(ctx, suite.mustID(5), true)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	count, err = suite.repository.CountByRestaurantAndAvailability(ctx, suite.mustID(5), false)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsAvailabilityChange() {
	ctx := context.Background()
	p := suite.addProduct("Margherita", "Pizza", 5)
	suite.makeUnavailable(p)

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsAvailable())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	p := suite.addProduct("Margherita", "Pizza", 5)

	suite.Require().NoError(suite.repository.Delete(ctx, p.ID()))

	_, err := suite.repository.Get(ctx, p.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Delete(ctx, p.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
