package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-gateway/internal/adapter"
	"github.com/MKhiriev/go-user-gateway/internal/config"
	"github.com/MKhiriev/go-user-gateway/internal/logger"
	"github.com/MKhiriev/go-user-gateway/internal/metrics"
	"github.com/MKhiriev/go-user-gateway/internal/store"
	"github.com/MKhiriev/go-user-gateway/internal/validators"
	"github.com/MKhiriev/go-user-gateway/models"
)

type Services struct {
	GatewayService GatewayService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	client, err := adapter.NewRetryingHTTPClient(adapter.HTTPClientConfig{
		Timeout:    cfg.Gateway.Timeout,
		Retries:    cfg.Gateway.RetryCount(),
		RetryDelay: cfg.Gateway.RetryWait(),
	}, m)
	if err != nil {
		return nil, fmt.Errorf("error creating upstream http client: %w", err)
	}

	gatewayService, err := NewGatewayService(cfg.Gateway, client, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		GatewayService: gatewayService,
		UserService:    NewUserService(storages.UserRepository, validators.NewUserValidator(), logger),
		AppInfoService: appInfoService,
	}, nil
}
