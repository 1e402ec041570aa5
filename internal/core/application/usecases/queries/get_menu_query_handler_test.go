package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/menu"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetMenuQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetMenuQueryHandler
	menuRepo  *menurepo.GormMenuRepository
}

func (suite *GetMenuQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&menurepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetMenuQueryHandler(db)
	suite.menuRepo = menurepo.NewGormMenuRepository(db, &mockAggregateTracker{})
}

func (suite *GetMenuQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetMenuQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE menu_items RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_EmptyCatalog_ReturnsEmptySlice() {
	query := queries.NewGetMenuQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_ReturnsAllItemsSortedByID() {
	ctx := context.Background()

	suite.addItem("Burger", 8.99, true)
	suite.addItem("Fries", 3.49, true)
	suite.addItem("Soda", 1.99, false)

	query := queries.NewGetMenuQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("Burger", result[0].Name)
	suite.InDelta(8.99, result[0].Price, 0.001)
	suite.True(result[0].Available)

	suite.Equal("Fries", result[1].Name)
	suite.True(result[1].Available)

	// Unavailable items stay on the card.
	suite.Equal("Soda", result[2].Name)
	suite.False(result[2].Available)

	for i := range len(result) - 1 {
		suite.Less(result[i].ID, result[i+1].ID)
	}
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetMenuQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetMenuQueryIsNotConstructed)
}

func (suite *GetMenuQueryHandlerTestSuite) addItem(name string, price float64, available bool) {
	item, err := menu.NewItem(name, price, available)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.menuRepo.Add(context.Background(), item))
}

func TestGetMenuQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetMenuQueryHandlerTestSuite))
}
