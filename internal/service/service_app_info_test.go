package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-gateway/internal/logger"
	"github.com/MKhiriev/go-user-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_Success(t *testing.T) {
	info := models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123")

	svc, err := NewAppInfoService(info, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, info, svc.GetAppBuildInfo(context.Background()))
}

func TestNewAppInfoService_MissingBuildValuesReportedAsNotAvailable(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "N/A", svc.GetAppBuildInfo(context.Background()).Version)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
