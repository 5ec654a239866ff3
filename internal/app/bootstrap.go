package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quiz-control/internal/config"
	"quiz-control/internal/database/migration"
	"quiz-control/internal/delivery/http/handler"
	"quiz-control/internal/delivery/http/middleware"
	"quiz-control/internal/delivery/http/routes"
	"quiz-control/internal/pkg/jwt"
	"quiz-control/internal/repository"
	"quiz-control/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber *fiber.App
}

func Bootstrap(cfg config.Config, c *Container) (*App, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := (migration.Runner{}).Run(ctx, c.DB.SQLDB()); err != nil {
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	users := repository.NewPostgresUserRepository(c.DB)
	historico := repository.NewPostgresHistoryRepository(c.DB)
	tokens := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	userUC := usecase.NewUserUsecase(users, c.Cache)
	authUC := usecase.NewAuthUsecase(users, tokens)
	historyUC := usecase.NewHistoryUsecase(users, historico, c.Cache)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, c)

	reg := routes.NewRegistry(
		handler.NewUsuarioHandler(userUC),
		handler.NewAuthHandler(authUC),
		handler.NewHistoricoHandler(historyUC),
		handler.NewHealthHandler(c.DB),
	)
	reg.Register(f)

	app := &App{Fiber: f}
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	// any origin, as the original clients expect
	app.Use(cors.New())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware().Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
