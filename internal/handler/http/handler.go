package http

import (
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
)

const defaultSessionTTL = 7 * 24 * time.Hour

type Handler struct {
	services *service.Services

	// secureCookie marks the session cookie Secure; set in production.
	secureCookie bool
	// sessionTTL is the Max-Age of the session cookie.
	sessionTTL time.Duration

	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	sessionTTL := cfg.TokenDuration
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		secureCookie: cfg.IsProduction(),
		sessionTTL:   sessionTTL,
		traceIDs:     utils.NewUUIDGenerator(),
		logger:       logger,
	}
}
