package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quiz-control/internal/database"
	"quiz-control/internal/domain/history"
	"quiz-control/internal/domain/user"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const userColumns = `id, nome, email, senha, cep, logradouro, bairro, cidade, estado`

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO usuario (nome, email, senha, cep, logradouro, bairro, cidade, estado)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		u.Nome, u.Email, u.SenhaHash, u.CEP, u.Logradouro, u.Bairro, u.Cidade, u.Estado,
	)
	if err := row.Scan(&u.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, err
	}
	u.Historicos = []history.Entry{}
	return u, nil
}

func (r *PostgresUserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM usuario ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *PostgresUserRepository) GetByName(ctx context.Context, nome string) (user.User, error) {
	// nome is not unique; first row by id wins
	return r.getOne(ctx, `WHERE nome = $1 ORDER BY id ASC LIMIT 1`, nome)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *PostgresUserRepository) Update(ctx context.Context, id int64, in user.UpdateFields) (user.User, error) {
	set := make([]string, 0, 6)
	args := make([]any, 0, 7)
	add := func(col string, v *string) {
		if v == nil {
			return
		}
		args = append(args, *v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	add("nome", in.Nome)
	add("cep", in.CEP)
	add("cidade", in.Cidade)
	add("estado", in.Estado)
	add("logradouro", in.Logradouro)
	add("bairro", in.Bairro)

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return user.User{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	args = append(args, id)
	affected, err := tx.Exec(ctx,
		fmt.Sprintf(`UPDATE usuario SET %s WHERE id = $%d`, strings.Join(set, ", "), len(args)),
		args...,
	)
	if err != nil {
		return user.User{}, err
	}
	if affected == 0 {
		return user.User{}, user.ErrNotFound
	}

	u, err := scanUser(tx.QueryRow(ctx, `SELECT `+userColumns+` FROM usuario WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return user.User{}, err
	}

	if err := r.attachHistoricos(ctx, &u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	// historico rows go with the user via ON DELETE CASCADE
	return r.db.Exec(ctx, `DELETE FROM usuario WHERE id = $1`, id)
}

func (r *PostgresUserRepository) getOne(ctx context.Context, where string, arg any) (user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuario `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}

	if err := r.attachHistoricos(ctx, &u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

// attachHistoricos eagerly loads the user's quiz history with a second
// query; there is no lazy object graph behind the entity.
func (r *PostgresUserRepository) attachHistoricos(ctx context.Context, u *user.User) error {
	rows, err := r.db.Query(ctx,
		`SELECT id, categoria, score, data_insercao, usuario
		 FROM historico
		 WHERE usuario = $1
		 ORDER BY id ASC`,
		u.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	u.Historicos = make([]history.Entry, 0)
	for rows.Next() {
		var e history.Entry
		if err := rows.Scan(&e.ID, &e.Categoria, &e.Score, &e.DataInsercao, &e.UsuarioID); err != nil {
			return err
		}
		u.Historicos = append(u.Historicos, e)
	}
	return rows.Err()
}

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Nome, &u.Email, &u.SenhaHash,
		&u.CEP, &u.Logradouro, &u.Bairro, &u.Cidade, &u.Estado,
	)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}
