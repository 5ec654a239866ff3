package dto

import (
	"time"

	"quiz-control/internal/domain/user"
)

// UsuarioView is the full user representation: identity, address and the
// embedded quiz history. Senha never leaves the store, so it has no field
// here.
type UsuarioView struct {
	ID         int64               `json:"id"`
	Nome       string              `json:"nome"`
	Email      string              `json:"email"`
	CEP        string              `json:"cep"`
	Logradouro string              `json:"logradouro"`
	Bairro     string              `json:"bairro"`
	Cidade     string              `json:"cidade"`
	Estado     string              `json:"estado"`
	Historicos []HistoricoItemView `json:"historicos"`
}

// HistoricoItemView is the reduced history shape embedded in a user view.
type HistoricoItemView struct {
	Categoria string    `json:"categoria"`
	Score     string    `json:"score"`
	Data      time.Time `json:"data"`
}

// UsuarioListItem is the flat record used by the listing; no embedded
// history.
type UsuarioListItem struct {
	ID         int64  `json:"id"`
	Nome       string `json:"nome"`
	Email      string `json:"email"`
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Cidade     string `json:"cidade"`
	Estado     string `json:"estado"`
}

type ListagemUsuarios struct {
	Usuarios []UsuarioListItem `json:"usuarios"`
}

type LoginView struct {
	Nome string `json:"nome"`
	ID   int64  `json:"id"`
}

type DeleteView struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

func NewUsuarioView(u user.User) UsuarioView {
	historicos := make([]HistoricoItemView, 0, len(u.Historicos))
	for _, h := range u.Historicos {
		historicos = append(historicos, HistoricoItemView{
			Categoria: h.Categoria,
			Score:     h.Score,
			Data:      h.DataInsercao,
		})
	}
	return UsuarioView{
		ID:         u.ID,
		Nome:       u.Nome,
		Email:      u.Email,
		CEP:        u.CEP,
		Logradouro: u.Logradouro,
		Bairro:     u.Bairro,
		Cidade:     u.Cidade,
		Estado:     u.Estado,
		Historicos: historicos,
	}
}

func NewListagemUsuarios(users []user.User) ListagemUsuarios {
	items := make([]UsuarioListItem, 0, len(users))
	for _, u := range users {
		items = append(items, UsuarioListItem{
			ID:         u.ID,
			Nome:       u.Nome,
			Email:      u.Email,
			CEP:        u.CEP,
			Logradouro: u.Logradouro,
			Bairro:     u.Bairro,
			Cidade:     u.Cidade,
			Estado:     u.Estado,
		})
	}
	return ListagemUsuarios{Usuarios: items}
}

func NewLoginView(u user.User) LoginView {
	return LoginView{Nome: u.Nome, ID: u.ID}
}
