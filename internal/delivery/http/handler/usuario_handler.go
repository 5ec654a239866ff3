package handler

import (
	"errors"
	"sort"
	"strings"

	"quiz-control/internal/delivery/http/dto"
	"quiz-control/internal/delivery/http/middleware"
	"quiz-control/internal/domain/user"
	"quiz-control/internal/usecase"
	ucuser "quiz-control/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

const (
	msgUsuarioAdicionado    = "Usuário adicionado com sucesso!"
	msgEmailJaCadastrado    = "Registro de usuário de mesmo email já salvo na base :/"
	msgErroAoAdicionar      = "Ocorreu um erro ao adicionar o usuário."
	msgUsuarioNaoEncontrado = "Registro de usuario não encontrado na base :/"
	msgUsuarioRemovido      = "Registro de usuario removido"
	msgUpdateNaoEncontrado  = "Usuário não encontrado :/"
	msgErroAoAtualizar      = "Erro ao atualizar os detalhes do usuário."
)

type UsuarioHandler struct {
	uc usecase.UserUsecase
}

type createUsuarioRequest struct {
	Nome       *string `json:"nome"`
	Email      *string `json:"email"`
	Senha      *string `json:"senha"`
	CEP        *string `json:"cep"`
	Logradouro *string `json:"logradouro"`
	Bairro     *string `json:"bairro"`
	Cidade     *string `json:"cidade"`
	Estado     *string `json:"estado"`
}

type updateUsuarioRequest struct {
	ID         *int64  `json:"id"`
	Nome       *string `json:"nome"`
	CEP        *string `json:"cep"`
	Cidade     *string `json:"cidade"`
	Estado     *string `json:"estado"`
	Logradouro *string `json:"logradouro"`
	Bairro     *string `json:"bairro"`
}

type deleteUsuarioRequest struct {
	ID *int64 `json:"id"`
}

func NewUsuarioHandler(uc usecase.UserUsecase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

func (h *UsuarioHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/usuario", h.Create)
	r.Get("/usuarios", h.List)
	r.Get("/usuario", h.GetByName)
	r.Put("/usuario", h.Update)
	r.Delete("/usuario", h.Delete)
}

func (h *UsuarioHandler) Create(c fiber.Ctx) error {
	var req createUsuarioRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgErroAoAdicionar, err)
	}
	if msg, ok := missingFields(map[string]*string{
		"nome": req.Nome, "email": req.Email, "senha": req.Senha, "cep": req.CEP,
		"logradouro": req.Logradouro, "bairro": req.Bairro, "cidade": req.Cidade, "estado": req.Estado,
	}); !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, msg, nil)
	}

	u, err := h.uc.Create(c.Context(), ucuser.CreateInput{
		Nome:       *req.Nome,
		Email:      *req.Email,
		Senha:      *req.Senha,
		CEP:        *req.CEP,
		Logradouro: *req.Logradouro,
		Bairro:     *req.Bairro,
		Cidade:     *req.Cidade,
		Estado:     *req.Estado,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return middleware.NewAppError(fiber.StatusConflict, msgEmailJaCadastrado, err)
		}
		return middleware.NewAppError(fiber.StatusBadRequest, msgErroAoAdicionar, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": msgUsuarioAdicionado,
		"usuario": dto.NewUsuarioView(u),
	})
}

func (h *UsuarioHandler) List(c fiber.Ctx) error {
	users, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewListagemUsuarios(users))
}

func (h *UsuarioHandler) GetByName(c fiber.Ctx) error {
	nome := strings.TrimSpace(c.Query("nome"))
	if nome == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Parâmetro obrigatório ausente: nome", nil)
	}

	u, err := h.uc.GetByName(c.Context(), nome)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, msgUsuarioNaoEncontrado, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewUsuarioView(u))
}

func (h *UsuarioHandler) Update(c fiber.Ctx) error {
	var req updateUsuarioRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgErroAoAtualizar, err)
	}
	if req.ID == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Campo obrigatório ausente: id", nil)
	}

	u, err := h.uc.Update(c.Context(), *req.ID, ucuser.UpdateInput{
		Nome:       req.Nome,
		CEP:        req.CEP,
		Cidade:     req.Cidade,
		Estado:     req.Estado,
		Logradouro: req.Logradouro,
		Bairro:     req.Bairro,
	})
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, msgUpdateNaoEncontrado, err)
		}
		return middleware.NewAppError(fiber.StatusBadRequest, msgErroAoAtualizar, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewUsuarioView(u))
}

func (h *UsuarioHandler) Delete(c fiber.Ctx) error {
	var req deleteUsuarioRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "", err)
	}
	if req.ID == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Campo obrigatório ausente: id", nil)
	}

	if err := h.uc.Delete(c.Context(), *req.ID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, msgUsuarioNaoEncontrado, err)
		}
		return middleware.NewAppError(fiber.StatusBadRequest, "", err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.DeleteView{Message: msgUsuarioRemovido, ID: *req.ID})
}

func missingFields(fields map[string]*string) (string, bool) {
	missing := make([]string, 0)
	for name, v := range fields {
		if v == nil || strings.TrimSpace(*v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return "", true
	}
	sort.Strings(missing)
	return "Campos obrigatórios ausentes: " + strings.Join(missing, ", "), false
}
