package setup

import (
	"github.com/bulletin-dev/bulletin/backend/internal/handler"
	"github.com/bulletin-dev/bulletin/backend/internal/rules"
	"github.com/bulletin-dev/bulletin/backend/internal/service"
	"github.com/bulletin-dev/bulletin/backend/internal/storage/pg"
	"github.com/bulletin-dev/bulletin/backend/internal/utils/jwt"
	"github.com/bulletin-dev/bulletin/shared/config"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Jwt     jwt.JwtService
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwt := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	validator := rules.New()
	weekday, err := cfg.Public.Weekday()
	if err != nil {
		return nil, err
	}
	validator.WorshipWeekday = weekday

	auth := service.NewAuth(storage, jwt)
	bulletin := service.NewBulletin(storage, validator, service.NewSanitizer())
	template := service.NewTemplate(cfg.Public.RotationWeeks)

	h := handler.New(auth, bulletin, template, storage, cfg, jwt)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Jwt:     jwt,
		Config:  cfg,
	}, nil
}
