package handler

import (
	"github.com/rootandbloom/garden-center/internal/config"
	"github.com/rootandbloom/garden-center/internal/repository"
)

// AdminHandler bundles the repositories staff need to manage storefront
// content from the dashboard. Authentication and role checks are applied
// by middleware before any of its methods run.
type AdminHandler struct {
	Cfg           config.Config
	SettingsRepo  *repository.SettingsRepo
	HourRepo      *repository.HourRepo
	BannerRepo    *repository.BannerRepo
	ClassRepo     *repository.ClassRepo
	ContentRepo   *repository.PageContentRepo
	Registrations *repository.RegistrationRepo
}

// NewAdminHandler constructs an AdminHandler and panics if any dependency is nil.
func NewAdminHandler(cfg config.Config, settings *repository.SettingsRepo, hours *repository.HourRepo,
	banners *repository.BannerRepo, classes *repository.ClassRepo,
	content *repository.PageContentRepo, regs *repository.RegistrationRepo) *AdminHandler {
	if settings == nil || hours == nil || banners == nil || classes == nil || content == nil || regs == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{
		Cfg:           cfg,
		SettingsRepo:  settings,
		HourRepo:      hours,
		BannerRepo:    banners,
		ClassRepo:     classes,
		ContentRepo:   content,
		Registrations: regs,
	}
}
