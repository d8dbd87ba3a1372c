package cmd

import (
	"net/http"
	"time"

	"shiprates/internal/adapters/out/cache"
	"shiprates/internal/adapters/out/fedex"
	"shiprates/internal/adapters/out/postgres/configrepo"
	"shiprates/internal/core/application/usecases/commands"
	"shiprates/internal/core/application/usecases/queries"
	"shiprates/internal/core/ports"

	"gorm.io/gorm"
)

// carrierHTTPTimeout bounds one carrier round trip. The quote path calls the
// carrier at most once per request and never retries.
const carrierHTTPTimeout = 10 * time.Second

// systemClock satisfies the Clock port with the real time.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type CompositionRoot struct {
	gormDB        *gorm.DB
	settingsCache *cache.SettingsCache
	carrierClient ports.CarrierRateClient
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	settingsCache := cache.NewSettingsCache(configrepo.NewGormConfigRepository(gormDB))

	carrierClient, err := fedex.NewClient(
		fedex.ClientConfig{
			BaseURL:       config.FedexBaseURL,
			ClientID:      config.FedexClientID,
			ClientSecret:  config.FedexClientSecret,
			AccountNumber: config.FedexAccountNumber,
		},
		&http.Client{Timeout: carrierHTTPTimeout},
		systemClock{},
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:        gormDB,
		settingsCache: settingsCache,
		carrierClient: carrierClient,
	}, nil
}

// SettingsCache exposes the cache so main can perform the initial load.
func (c *CompositionRoot) SettingsCache() ports.SettingsCache {
	return c.settingsCache
}

func (c *CompositionRoot) CreateGetShippingOptionsQueryHandler() queries.GetShippingOptionsQueryHandler {
	return queries.NewGetShippingOptionsQueryHandler(c.settingsCache, c.carrierClient, systemClock{})
}

func (c *CompositionRoot) CreateRefreshRateConfigCommandHandler() commands.RefreshRateConfigCommandHandler {
	return commands.NewRefreshRateConfigCommandHandler(c.settingsCache)
}
