package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noBuild = models.NewAppBuildInfo("N/A", "N/A", "N/A")

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	cfg := config.App{Version: "1.0.0"}

	svc, err := NewAppInfoService(cfg, noBuild, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	cfg := config.App{Version: ""}

	svc, err := NewAppInfoService(cfg, noBuild, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestNewAppInfoService_FallsBackToBuildVersion(t *testing.T) {
	build := models.NewAppBuildInfo("v0.9.0", "2026-01-02", "abc123")

	svc, err := NewAppInfoService(config.App{}, build, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "v0.9.0", svc.GetAppVersion(context.Background()))
	assert.Equal(t, models.AppInfo{Version: "v0.9.0", BuildDate: "2026-01-02", Commit: "abc123"}, svc.GetAppInfo(context.Background()))
}

func TestNewAppInfoService_ConfigVersionWins(t *testing.T) {
	build := models.NewAppBuildInfo("v0.9.0", "N/A", "N/A")

	svc, err := NewAppInfoService(config.App{Version: "1.2.3"}, build, logger.Nop())
	require.NoError(t, err)

	info := svc.GetAppInfo(context.Background())
	assert.Equal(t, "1.2.3", info.Version)
	assert.Empty(t, info.BuildDate)
	assert.Empty(t, info.Commit)
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	cfg := config.App{Version: "3.1.4"}
	svc, err := NewAppInfoService(cfg, noBuild, logger.Nop())
	require.NoError(t, err)

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, "3.1.4", got)
}

func TestGetAppVersion_DifferentInstances_IndependentVersions(t *testing.T) {
	svc1, err := NewAppInfoService(config.App{Version: "1.0.0"}, noBuild, logger.Nop())
	require.NoError(t, err)

	svc2, err := NewAppInfoService(config.App{Version: "2.0.0"}, noBuild, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc1.GetAppVersion(context.Background()))
	assert.Equal(t, "2.0.0", svc2.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, noBuild, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
