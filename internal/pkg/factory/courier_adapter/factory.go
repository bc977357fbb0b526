package courier_adapter

import (
	"errors"
	"time"

	"orchestrator/internal/entities"
	"orchestrator/internal/gateway/courier"
	"orchestrator/internal/gateway/courier/dhl"
	"orchestrator/internal/pkg/factory/delivery_estimate"
)

type Config struct {
	DHLUseMock       bool
	DHLBillingNumber string
	HTTPTimeout      time.Duration
}

// AdapterFactory собирает адаптеры из строки courier_configs.
type AdapterFactory struct {
	cfg       Config
	estimator *delivery_estimate.DeliveryEstimateFactory

	// один на процесс, чтобы созданные отправления переживали пересоздание адаптера
	dhlMock *dhl.MockAPIClient
}

func New(cfg Config, estimator *delivery_estimate.DeliveryEstimateFactory) *AdapterFactory {
	return &AdapterFactory{
		cfg:       cfg,
		estimator: estimator,
		dhlMock:   dhl.NewMockAPIClient(),
	}
}

// NewRegistry регистрирует всех известных провайдеров.
func NewRegistry(configs courier.ConfigRepository, factory *AdapterFactory) *courier.Registry {
	registry := courier.NewRegistry(configs)
	registry.Register(dhl.Name, courier.Provider{
		Constructor:   factory.DHL,
		WebhookStatus: dhl.MapWebhookStatus,
	})
	return registry
}

func (f *AdapterFactory) DHL(cfg entities.CourierConfig) (courier.ShipmentCourier, error) {
	if f.cfg.DHLUseMock {
		return dhl.New(f.dhlMock, f.estimator, dhl.WithBillingNumber(f.cfg.DHLBillingNumber)), nil
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("dhl: base_url is empty in courier config")
	}

	api := dhl.NewHTTPAPIClient(dhl.HTTPAPIClientConfig{
		BaseURL:   cfg.BaseURL,
		APIKey:    cfg.APIKey,
		APISecret: cfg.APISecret,
		Username:  cfg.Username,
		Password:  cfg.Password,
		Timeout:   f.cfg.HTTPTimeout,
	})

	return dhl.New(api, f.estimator, dhl.WithBillingNumber(f.cfg.DHLBillingNumber)), nil
}
