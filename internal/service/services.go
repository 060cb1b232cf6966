package service

import (
	"github.com/MKhiriev/go-influo/internal/adapter"
	"github.com/MKhiriev/go-influo/internal/config"
	"github.com/MKhiriev/go-influo/internal/crypto"
	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/store"
)

type Services struct {
	AuthService    AuthService
	ResetService   ResetService
	ProfileService ProfileService
	PostService    PostService
}

func NewServices(storages *store.Storages, mailer adapter.Mailer, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher()
	return &Services{
		AuthService:    NewAuthService(storages.Users, hasher, cfg.Auth, logger),
		ResetService:   NewResetService(storages.Users, storages.Resets, mailer, hasher, crypto.NewOTPGenerator(), cfg.OTP, logger),
		ProfileService: NewProfileService(storages.Users, storages.Follows, logger),
		PostService:    NewPostService(storages.Posts, logger),
	}
}
