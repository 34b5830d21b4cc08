package http

import (
	"context"

	"github.com/MKhiriev/go-user-gateway/internal/adapter"
	"github.com/MKhiriev/go-user-gateway/internal/config"
	"github.com/MKhiriev/go-user-gateway/internal/logger"
	"github.com/MKhiriev/go-user-gateway/internal/metrics"
	"github.com/MKhiriev/go-user-gateway/internal/service"
	"github.com/MKhiriev/go-user-gateway/models"
)

// ---- Fake: GatewayService ----

type fakeGatewayService struct {
	fetchFn func(ctx context.Context, endpoint string, query adapter.Query) (models.UpstreamResponse, error)
}

func (f *fakeGatewayService) Fetch(ctx context.Context, endpoint string, query adapter.Query) (models.UpstreamResponse, error) {
	return f.fetchFn(ctx, endpoint, query)
}

// ---- Fake: UserService ----

type fakeUserService struct {
	createFn func(ctx context.Context, req models.UserRequest) (models.User, error)
	listFn   func(ctx context.Context) ([]models.User, error)
	getFn    func(ctx context.Context, id int64) (models.User, error)
	updateFn func(ctx context.Context, id int64, req models.UserRequest) (models.User, error)
}

func (f *fakeUserService) Create(ctx context.Context, req models.UserRequest) (models.User, error) {
	return f.createFn(ctx, req)
}

func (f *fakeUserService) List(ctx context.Context) ([]models.User, error) {
	return f.listFn(ctx)
}

func (f *fakeUserService) Get(ctx context.Context, id int64) (models.User, error) {
	return f.getFn(ctx, id)
}

func (f *fakeUserService) Update(ctx context.Context, id int64, req models.UserRequest) (models.User, error) {
	return f.updateFn(ctx, id, req)
}

// ---- Fake: AppInfoService ----

type fakeAppInfoService struct {
	info models.AppBuildInfo
}

func (f *fakeAppInfoService) GetAppBuildInfo(_ context.Context) models.AppBuildInfo {
	return f.info
}

// newTestHandler builds a Handler with a nop logger, fresh metrics and no
// request timeout.
func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	return NewHandler(services, metrics.NewMetrics(), config.Server{}, logger.Nop())
}
