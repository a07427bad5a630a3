package queries_test

import (
	"context"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// postgresQueryTestSuite is the shared base for query handler integration
// tests: one Postgres container per suite, migrated schema, tables truncated
// before every test.
type postgresQueryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *postgresQueryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&productrepo.ProductDTO{},
		&productrepo.KitchenVariantDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *postgresQueryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *postgresQueryTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, products, kitchen_variants RESTART IDENTITY CASCADE",
	).Error
	suite.Require().NoError(err)
}

// insertOrder seeds one order row directly through the DTO.
func (suite *postgresQueryTestSuite) insertOrder(
	createdAt time.Time,
	mobileNumber string,
	totalAmount string,
	status order.Status,
	items []order.Item,
) {
	rawItems, err := order.MarshalItems(items)
	suite.Require().NoError(err)

	dto := orderrepo.OrderDTO{
		CreatedAt:    createdAt,
		MobileNumber: mobileNumber,
		TotalAmount:  decimal.RequireFromString(totalAmount),
		Status:       int(status),
		Items:        rawItems,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

// insertProduct seeds one product row directly through the DTO.
func (suite *postgresQueryTestSuite) insertProduct(dto productrepo.ProductDTO) {
	suite.Require().NoError(suite.db.Create(&dto).Error)
}
