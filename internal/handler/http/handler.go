package http

import (
	"time"

	"github.com/MKhiriev/go-user-gateway/internal/config"
	"github.com/MKhiriev/go-user-gateway/internal/logger"
	"github.com/MKhiriev/go-user-gateway/internal/metrics"
	"github.com/MKhiriev/go-user-gateway/internal/service"
	"github.com/MKhiriev/go-user-gateway/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// traceIDs generates trace ids for requests that arrive without one.
	traceIDs *utils.UUIDGenerator

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		traceIDs:       utils.NewUUIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
