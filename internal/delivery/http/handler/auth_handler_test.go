package handler

import (
	"context"
	"strings"
	"testing"

	"quiz-control/internal/domain/user"
	ucauth "quiz-control/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type stubAuthUsecase struct {
	user  user.User
	token string
	err   error
}

func (s stubAuthUsecase) Login(context.Context, ucauth.LoginInput) (user.User, string, error) {
	return s.user, s.token, s.err
}

func TestAuthHandler_Login_Success(t *testing.T) {
	app := newTestApp(NewAuthHandler(stubAuthUsecase{
		user:  user.User{ID: 7, Nome: "Ana"},
		token: "tok-123",
	}))

	resp, body := doJSON(t, app, fiber.MethodPost, "/login", map[string]any{"email": "ana@x.com", "senha": "123"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["nome"] != "Ana" || body["id"] != float64(7) {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, has := body["senha"]; has {
		t.Fatalf("login view must not echo senha")
	}
	if got := resp.Header.Get(fiber.HeaderAuthorization); !strings.HasPrefix(got, "Bearer ") {
		t.Fatalf("expected bearer token header, got %q", got)
	}
}

func TestAuthHandler_Login_WrongSenha(t *testing.T) {
	app := newTestApp(NewAuthHandler(stubAuthUsecase{err: ucauth.ErrInvalidCredentials}))

	resp, body := doJSON(t, app, fiber.MethodPost, "/login", map[string]any{"email": "ana@x.com", "senha": "no"})
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	if body["message"] != msgSenhaIncorreta {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	app := newTestApp(NewAuthHandler(stubAuthUsecase{err: ucauth.ErrUserNotFound}))

	resp, body := doJSON(t, app, fiber.MethodPost, "/login", map[string]any{"email": "x@x.com", "senha": "123"})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body["message"] != msgUsuarioNaoEncontrado {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestAuthHandler_Login_MissingKeys(t *testing.T) {
	app := newTestApp(NewAuthHandler(stubAuthUsecase{}))

	resp, _ := doJSON(t, app, fiber.MethodPost, "/login", map[string]any{"email": "ana@x.com"})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
