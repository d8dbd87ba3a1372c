package configrepo_test

import (
	"context"
	"testing"
	"time"

	"shiprates/internal/adapters/out/postgres/configrepo"
	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConfigRepositoryIntegrationTestSuite provides integration tests for the
// configuration repository using PostgreSQL containers.
type ConfigRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *configrepo.GormConfigRepository
}

func (suite *ConfigRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&configrepo.RateSettingsDTO{},
		&configrepo.BoxTypeDTO{},
		&configrepo.LeadTimeDTO{},
	))
}

func (suite *ConfigRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE rate_settings, box_types, lead_times").Error)
	suite.repository = configrepo.NewGormConfigRepository(suite.db)
}

func (suite *ConfigRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ConfigRepositoryIntegrationTestSuite) seedSettings() {
	suite.Require().NoError(suite.db.Create(&configrepo.RateSettingsDTO{
		HomeCountry:      "US",
		LocalZips:        pq.StringArray{"33101", "33102"},
		AllowedServices:  pq.StringArray{"FEDEX_GROUND", "FEDEX_2_DAY"},
		GroundFeeCents:   3000,
		OtherFeeCents:    4500,
		PriorityFeeCents: 3000,
		DefaultLeadDays:  1,
		ShipperCountry:   "US",
		ShipperPostal:    "33172",
		ShipperProvince:  "FL",
		ShipperCity:      "Miami",
	}).Error)
}

func (suite *ConfigRepositoryIntegrationTestSuite) seedCatalog() {
	suite.Require().NoError(suite.db.Create(&[]configrepo.BoxTypeDTO{
		{Name: "small", LengthIn: 10, WidthIn: 8, HeightIn: 6, MaxWeightLb: 10, EmptyWeightLb: 0.5},
		{Name: "medium", LengthIn: 16, WidthIn: 12, HeightIn: 8, MaxWeightLb: 30, EmptyWeightLb: 1},
	}).Error)
	suite.Require().NoError(suite.db.Create(&[]configrepo.LeadTimeDTO{
		{Sku: "engraved-plaque", Days: 5},
		{Sku: "mug", Days: 2},
	}).Error)
}

func (suite *ConfigRepositoryIntegrationTestSuite) TestLoad_CompleteConfiguration() {
	ctx := context.Background()
	suite.seedSettings()
	suite.seedCatalog()

	settings, err := suite.repository.Load(ctx)
	suite.Require().NoError(err)

	suite.Equal("US", settings.HomeCountry())
	suite.Len(settings.BoxTypes(), 2)
	suite.Equal("medium", settings.BoxTypes()[0].Name()) // alphabetical catalog order
	suite.Equal("small", settings.BoxTypes()[1].Name())
	suite.Equal(5, settings.LeadTimes().DaysFor("engraved-plaque"))
	suite.Equal(1, settings.LeadTimes().DaysFor("unknown-sku"))
	suite.True(settings.IsAllowedService("FEDEX_GROUND"))
	suite.False(settings.IsAllowedService("FEDEX_FREIGHT"))
	suite.Equal("33172", settings.ShipperAddress().PostalCode().String())

	localZip, err := cart.NewPostalCode("33101-4412")
	suite.Require().NoError(err)
	suite.True(settings.IsLocalZip(localZip))

	otherZip, err := cart.NewPostalCode("98101")
	suite.Require().NoError(err)
	suite.False(settings.IsLocalZip(otherZip))
}

func (suite *ConfigRepositoryIntegrationTestSuite) TestLoad_MissingSettingsRow_ReturnsNotFoundError() {
	ctx := context.Background()
	suite.seedCatalog()

	_, err := suite.repository.Load(ctx)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ConfigRepositoryIntegrationTestSuite) TestLoad_LatestRowWins() {
	ctx := context.Background()
	suite.seedSettings()

	// Operators append a new row instead of editing in place.
	suite.Require().NoError(suite.db.Create(&configrepo.RateSettingsDTO{
		HomeCountry:      "US",
		LocalZips:        pq.StringArray{},
		AllowedServices:  pq.StringArray{"PRIORITY_OVERNIGHT"},
		GroundFeeCents:   3500,
		OtherFeeCents:    5000,
		PriorityFeeCents: 2500,
		DefaultLeadDays:  2,
		ShipperCountry:   "US",
		ShipperPostal:    "33172",
		ShipperProvince:  "FL",
		ShipperCity:      "Miami",
	}).Error)

	settings, err := suite.repository.Load(ctx)
	suite.Require().NoError(err)

	suite.True(settings.IsAllowedService("PRIORITY_OVERNIGHT"))
	suite.False(settings.IsAllowedService("FEDEX_GROUND"))
	suite.Equal(2, settings.LeadTimes().DaysFor("unknown-sku"))
}

func (suite *ConfigRepositoryIntegrationTestSuite) TestLoad_EmptyCatalog_StillLoads() {
	ctx := context.Background()
	suite.seedSettings()

	settings, err := suite.repository.Load(ctx)
	suite.Require().NoError(err)
	suite.Empty(settings.BoxTypes())
}

func TestConfigRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigRepositoryIntegrationTestSuite))
}
