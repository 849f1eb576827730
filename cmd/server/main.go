package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/rootandbloom/garden-center/internal/config"
	"github.com/rootandbloom/garden-center/internal/database"
	"github.com/rootandbloom/garden-center/internal/handler"
	"github.com/rootandbloom/garden-center/internal/middleware"
	"github.com/rootandbloom/garden-center/internal/model"
	"github.com/rootandbloom/garden-center/internal/queue"
	"github.com/rootandbloom/garden-center/internal/repository"
	"github.com/rootandbloom/garden-center/internal/router"
)

func main() {
	// .env is optional; in production configuration comes from real env vars.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient() // nil when Redis is absent; caching and limits degrade

	settingsRepo := repository.NewSettingsRepo(db)
	hourRepo := repository.NewHourRepo(db)
	bannerRepo := repository.NewBannerRepo(db)
	classRepo := repository.NewClassRepo(db)
	contentRepo := repository.NewPageContentRepo(db)
	regRepo := repository.NewRegistrationRepo(db)
	userRepo := repository.NewUserRepo(db)
	contactRepo := repository.NewContactRepo(db)

	seedAdmin(userRepo, cfg.BcryptCost)

	e := echo.New()
	e.HideBanner = true

	pub := &handler.PublicHandler{
		SettingsRepo: settingsRepo,
		HourRepo:     hourRepo,
		BannerRepo:   bannerRepo,
		ClassRepo:    classRepo,
		ContentRepo:  contentRepo,
	}
	regs := handler.NewRegistrationHandler(regRepo)
	contact := handler.NewContactHandler(contactRepo)
	auth := handler.NewAuthHandler(cfg, userRepo)
	admin := handler.NewAdminHandler(cfg, settingsRepo, hourRepo, bannerRepo, classRepo, contentRepo, regRepo)

	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limitMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterPublic(e, pub, regs, contact, cacheMW, limitMW)
	router.RegisterAuth(e, auth, cfg.JWTSecret)
	router.RegisterAdmin(e, admin, cfg.JWTSecret)

	// Serve stored uploads directly; the dashboard links to them by URL.
	e.Static(cfg.UploadBase, cfg.UploadDir)

	go func() {
		if err := queue.StartRegistrationConsumer(); err != nil {
			log.Printf("registration consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// seedAdmin creates the initial dashboard account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set, so a fresh deployment is usable without SQL
// access. An already existing account is left untouched.
func seedAdmin(users *repository.UserRepo, cost int) {
	email := os.Getenv("ADMIN_EMAIL")
	pass := os.Getenv("ADMIN_PASSWORD")
	if email == "" || pass == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := users.Create(ctx, email, "Administrator", pass, model.RoleAdmin, cost)
	if err != nil && !errors.Is(err, repository.ErrEmailExists) {
		log.Printf("seed admin: %v", err)
	}
}
