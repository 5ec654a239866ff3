package routes

import (
	"quiz-control/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Registry wires each handler onto the app. The resource paths live at the
// root, matching the original client contract.
type Registry struct {
	usuario   *handler.UsuarioHandler
	auth      *handler.AuthHandler
	historico *handler.HistoricoHandler
	health    *handler.HealthHandler
}

func NewRegistry(
	usuario *handler.UsuarioHandler,
	auth *handler.AuthHandler,
	historico *handler.HistoricoHandler,
	health *handler.HealthHandler,
) *Registry {
	return &Registry{usuario: usuario, auth: auth, historico: historico, health: health}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/", func(c fiber.Ctx) error {
		return c.Redirect().To("/health")
	})

	r.health.RegisterRoutes(app)
	r.usuario.RegisterRoutes(app)
	r.auth.RegisterRoutes(app)
	r.historico.RegisterRoutes(app)
}
