package repository

import (
	"context"

	"quiz-control/internal/database"
	"quiz-control/internal/domain/history"
)

type PostgresHistoryRepository struct {
	db database.DB
}

func NewPostgresHistoryRepository(db database.DB) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

func (r *PostgresHistoryRepository) Add(ctx context.Context, e history.Entry) (history.Entry, error) {
	var row database.Row
	if e.DataInsercao.IsZero() {
		row = r.db.QueryRow(ctx,
			`INSERT INTO historico (categoria, score, usuario)
			 VALUES ($1, $2, $3)
			 RETURNING id, data_insercao`,
			e.Categoria, e.Score, e.UsuarioID,
		)
	} else {
		row = r.db.QueryRow(ctx,
			`INSERT INTO historico (categoria, score, usuario, data_insercao)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id, data_insercao`,
			e.Categoria, e.Score, e.UsuarioID, e.DataInsercao,
		)
	}
	if err := row.Scan(&e.ID, &e.DataInsercao); err != nil {
		return history.Entry{}, err
	}
	return e, nil
}

func (r *PostgresHistoryRepository) ListByCategory(ctx context.Context, categoria string) ([]history.Entry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT h.id, h.categoria, h.score, h.data_insercao, h.usuario, u.nome
		 FROM historico h
		 JOIN usuario u ON u.id = h.usuario
		 WHERE h.categoria = $1
		 ORDER BY h.id ASC`,
		categoria,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]history.Entry, 0)
	for rows.Next() {
		var e history.Entry
		if err := rows.Scan(&e.ID, &e.Categoria, &e.Score, &e.DataInsercao, &e.UsuarioID, &e.UsuarioNome); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
