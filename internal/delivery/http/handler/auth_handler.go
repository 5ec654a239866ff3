package handler

import (
	"errors"

	"quiz-control/internal/delivery/http/dto"
	"quiz-control/internal/delivery/http/middleware"
	"quiz-control/internal/usecase"
	ucauth "quiz-control/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

const msgSenhaIncorreta = "Senha incorreta para este usuário :/"

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type loginRequest struct {
	Email *string `json:"email"`
	Senha *string `json:"senha"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/login", h.Login)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "", err)
	}
	if msg, ok := missingFields(map[string]*string{"email": req.Email, "senha": req.Senha}); !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, msg, nil)
	}

	u, token, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: *req.Email, Senha: *req.Senha})
	if err != nil {
		switch {
		case errors.Is(err, ucauth.ErrUserNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, msgUsuarioNaoEncontrado, err)
		case errors.Is(err, ucauth.ErrInvalidCredentials):
			return middleware.NewAppError(fiber.StatusForbidden, msgSenhaIncorreta, err)
		case errors.Is(err, ucauth.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, "", err)
		}
	}

	// clients keep the {nome, id} body; the session token travels in the
	// Authorization header
	c.Set(fiber.HeaderAuthorization, "Bearer "+token)
	return c.Status(fiber.StatusOK).JSON(dto.NewLoginView(u))
}
