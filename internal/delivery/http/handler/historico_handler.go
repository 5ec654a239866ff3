package handler

import (
	"errors"

	"quiz-control/internal/delivery/http/dto"
	"quiz-control/internal/delivery/http/middleware"
	"quiz-control/internal/domain/user"
	"quiz-control/internal/usecase"
	uchistory "quiz-control/internal/usecase/history"

	"github.com/gofiber/fiber/v3"
)

const (
	msgCategoriaNaoEncontrada = "Registros da categoria não encontrados na base :/"
	msgHistoricoInvalido      = "Dados de histórico inválidos."
)

type HistoricoHandler struct {
	uc usecase.HistoryUsecase
}

type addHistoricoRequest struct {
	User     *int64  `json:"user"`
	Category *string `json:"category"`
	Score    *string `json:"score"`
	Date     *string `json:"date"`
}

type porUsuarioRequest struct {
	UserName *string `json:"userName"`
}

type porCategoriaRequest struct {
	CategoryName *string `json:"categoryName"`
}

func NewHistoricoHandler(uc usecase.HistoryUsecase) *HistoricoHandler {
	return &HistoricoHandler{uc: uc}
}

func (h *HistoricoHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/historico", h.Add)
	r.Post("/por-usuario", h.ByUser)
	r.Post("/por-categoria", h.ByCategory)
}

func (h *HistoricoHandler) Add(c fiber.Ctx) error {
	var req addHistoricoRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgHistoricoInvalido, err)
	}
	if req.User == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Campo obrigatório ausente: user", nil)
	}
	if msg, ok := missingFields(map[string]*string{"category": req.Category, "score": req.Score}); !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, msg, nil)
	}

	in := uchistory.AddInput{
		UserID:    *req.User,
		Categoria: *req.Category,
		Score:     *req.Score,
	}
	if req.Date != nil {
		in.Data = *req.Date
	}

	u, err := h.uc.Add(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, msgUsuarioNaoEncontrado, err)
		case errors.Is(err, uchistory.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, msgHistoricoInvalido, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, "", err)
		}
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewUsuarioView(u))
}

func (h *HistoricoHandler) ByUser(c fiber.Ctx) error {
	var req porUsuarioRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "", err)
	}
	if msg, ok := missingFields(map[string]*string{"userName": req.UserName}); !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, msg, nil)
	}

	u, err := h.uc.ByUserName(c.Context(), *req.UserName)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, msgUsuarioNaoEncontrado, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewUsuarioView(u))
}

func (h *HistoricoHandler) ByCategory(c fiber.Ctx) error {
	var req porCategoriaRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "", err)
	}
	if msg, ok := missingFields(map[string]*string{"categoryName": req.CategoryName}); !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, msg, nil)
	}

	entries, err := h.uc.ByCategory(c.Context(), *req.CategoryName)
	if err != nil {
		if errors.Is(err, uchistory.ErrNoResults) {
			return middleware.NewAppError(fiber.StatusNotFound, msgCategoriaNaoEncontrada, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewListagemHistoricos(entries))
}
