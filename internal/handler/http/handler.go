package http

import (
	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/oauth"
	"github.com/MKhiriev/go-influo/internal/service"
	"github.com/MKhiriev/go-influo/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	google    oauth.Provider

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, google oauth.Provider, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		google:    google,
		logger:    logger,
	}
}
