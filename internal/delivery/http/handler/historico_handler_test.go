package handler

import (
	"context"
	"testing"
	"time"

	"quiz-control/internal/domain/history"
	"quiz-control/internal/domain/user"
	uchistory "quiz-control/internal/usecase/history"

	"github.com/gofiber/fiber/v3"
)

type stubHistoryUsecase struct {
	addUser   user.User
	addErr    error
	byUser    user.User
	byUserErr error
	entries   []history.Entry
	byCatErr  error
}

func (s stubHistoryUsecase) Add(context.Context, uchistory.AddInput) (user.User, error) {
	return s.addUser, s.addErr
}
func (s stubHistoryUsecase) ByUserName(context.Context, string) (user.User, error) {
	return s.byUser, s.byUserErr
}
func (s stubHistoryUsecase) ByCategory(context.Context, string) ([]history.Entry, error) {
	return s.entries, s.byCatErr
}

func TestHistoricoHandler_Add_Success(t *testing.T) {
	owner := anaUser()
	owner.Historicos = []history.Entry{{
		ID: 3, Categoria: "geografia", Score: "7/10",
		DataInsercao: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), UsuarioID: 1,
	}}
	app := newTestApp(NewHistoricoHandler(stubHistoryUsecase{addUser: owner}))

	resp, body := doJSON(t, app, fiber.MethodPost, "/historico", map[string]any{
		"user": 1, "category": "geografia", "score": "7/10", "date": "2026-08-30T12:00:00Z",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	historicos, ok := body["historicos"].([]any)
	if !ok || len(historicos) != 1 {
		t.Fatalf("expected embedded historicos, got %v", body)
	}
	item := historicos[0].(map[string]any)
	if item["categoria"] != "geografia" || item["score"] != "7/10" {
		t.Fatalf("unexpected historico item: %v", item)
	}
	if _, has := item["id"]; has {
		t.Fatalf("embedded historico must not expose id")
	}
}

func TestHistoricoHandler_Add_UnknownUser(t *testing.T) {
	app := newTestApp(NewHistoricoHandler(stubHistoryUsecase{addErr: user.ErrNotFound}))

	resp, body := doJSON(t, app, fiber.MethodPost, "/historico", map[string]any{
		"user": 99, "category": "geografia", "score": "7/10",
	})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body["message"] != msgUsuarioNaoEncontrado {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestHistoricoHandler_Add_MissingKeys(t *testing.T) {
	app := newTestApp(NewHistoricoHandler(stubHistoryUsecase{}))

	resp, _ := doJSON(t, app, fiber.MethodPost, "/historico", map[string]any{"category": "geografia"})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestHistoricoHandler_ByUser_Success(t *testing.T) {
	app := newTestApp(NewHistoricoHandler(stubHistoryUsecase{byUser: anaUser()}))

	resp, body := doJSON(t, app, fiber.MethodPost, "/por-usuario", map[string]any{"userName": "Ana"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["nome"] != "Ana" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestHistoricoHandler_ByUser_NotFound(t *testing.T) {
	app := newTestApp(NewHistoricoHandler(stubHistoryUsecase{byUserErr: user.ErrNotFound}))

	resp, _ := doJSON(t, app, fiber.MethodPost, "/por-usuario", map[string]any{"userName": "Bruno"})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestHistoricoHandler_ByCategory_Success(t *testing.T) {
	app := newTestApp(NewHistoricoHandler(stubHistoryUsecase{entries: []history.Entry{{
		ID: 3, Categoria: "geografia", Score: "7/10",
		DataInsercao: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		UsuarioID:    1, UsuarioNome: "Ana",
	}}}))

	resp, body := doJSON(t, app, fiber.MethodPost, "/por-categoria", map[string]any{"categoryName": "geografia"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	historicos, ok := body["historicos"].([]any)
	if !ok || len(historicos) != 1 {
		t.Fatalf("expected historicos list, got %v", body)
	}
	item := historicos[0].(map[string]any)
	if item["id"] != float64(3) || item["nome"] != "Ana" {
		t.Fatalf("unexpected historico view: %v", item)
	}
}

func TestHistoricoHandler_ByCategory_NotFound(t *testing.T) {
	app := newTestApp(NewHistoricoHandler(stubHistoryUsecase{byCatErr: uchistory.ErrNoResults}))

	resp, body := doJSON(t, app, fiber.MethodPost, "/por-categoria", map[string]any{"categoryName": "historia"})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body["message"] != msgCategoriaNaoEncontrada {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}
