package queries_test

import (
	"context"
	"testing"
	"time"

	"autoshop/internal/adapters/out/postgres/carrepo"
	"autoshop/internal/adapters/out/postgres/userrepo"
	"autoshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetUserCarsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetUserCarsQueryHandler
}

func (suite *GetUserCarsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&userrepo.UserDTO{}, &carrepo.CarDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetUserCarsQueryHandler(db)
}

func (suite *GetUserCarsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetUserCarsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE cars, users RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)

	err = suite.db.Create(&userrepo.UserDTO{Email: "alice@example.com"}).Error
	suite.Require().NoError(err)
}

func (suite *GetUserCarsQueryHandlerTestSuite) TestHandle_EmptyGarage_ReturnsEmptySlice() {
	query, err := queries.NewGetUserCarsQuery(1, 0, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetUserCarsQueryHandlerTestSuite) TestHandle_WithCars_ReturnsOwnersCarsOrderedByID() {
	err := suite.db.Create(&userrepo.UserDTO{Email: "bob@example.com"}).Error
	suite.Require().NoError(err)

	suite.seedCar(1, "Thunder")
	suite.seedCar(2, "Lightning")
	suite.seedCar(1, "Storm")

	query, err := queries.NewGetUserCarsQuery(1, 0, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("Thunder", result[0].Nameplate)
	suite.Equal("Storm", result[1].Nameplate)
	suite.Equal(int64(1), result[0].UserID)
	suite.Equal(int64(1), result[1].UserID)
}

func (suite *GetUserCarsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetUserCarsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetUserCarsQuery constructor")
}

func (suite *GetUserCarsQueryHandlerTestSuite) seedCar(userID int64, nameplate string) {
	err := suite.db.Create(&carrepo.CarDTO{UserID: userID, Nameplate: nameplate}).Error
	suite.Require().NoError(err)
}

func TestGetUserCarsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetUserCarsQueryHandlerTestSuite))
}
