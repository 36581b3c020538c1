package handler

import (
	"context"

	"github.com/bulletin-dev/bulletin/backend/internal/service"
	"github.com/bulletin-dev/bulletin/backend/internal/utils/jwt"
	"github.com/bulletin-dev/bulletin/shared/config"
)

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth     service.AuthService
	bulletin service.BulletinService
	template service.TemplateService
	health   HealthChecker
	cfg      *config.Config
	jwt      jwt.JwtService
}

func New(auth service.AuthService, bulletin service.BulletinService, template service.TemplateService, health HealthChecker, cfg *config.Config, jwt jwt.JwtService) *Handler {
	return &Handler{auth, bulletin, template, health, cfg, jwt}
}
