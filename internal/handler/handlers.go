package handler

import (
	"github.com/MKhiriev/go-user-gateway/internal/config"
	"github.com/MKhiriev/go-user-gateway/internal/handler/grpc"
	"github.com/MKhiriev/go-user-gateway/internal/handler/http"
	"github.com/MKhiriev/go-user-gateway/internal/logger"
	"github.com/MKhiriev/go-user-gateway/internal/metrics"
	"github.com/MKhiriev/go-user-gateway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, pinger grpc.Pinger, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, m, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
