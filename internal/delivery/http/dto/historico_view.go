package dto

import (
	"time"

	"quiz-control/internal/domain/history"
)

// HistoricoView is the standalone history representation; nome is the
// owning user's name, denormalized for display.
type HistoricoView struct {
	ID        int64     `json:"id"`
	Categoria string    `json:"categoria"`
	Score     string    `json:"score"`
	Data      time.Time `json:"data"`
	Nome      string    `json:"nome"`
}

type ListagemHistoricos struct {
	Historicos []HistoricoView `json:"historicos"`
}

func NewHistoricoView(e history.Entry) HistoricoView {
	return HistoricoView{
		ID:        e.ID,
		Categoria: e.Categoria,
		Score:     e.Score,
		Data:      e.DataInsercao,
		Nome:      e.UsuarioNome,
	}
}

func NewListagemHistoricos(entries []history.Entry) ListagemHistoricos {
	views := make([]HistoricoView, 0, len(entries))
	for _, e := range entries {
		views = append(views, NewHistoricoView(e))
	}
	return ListagemHistoricos{Historicos: views}
}
