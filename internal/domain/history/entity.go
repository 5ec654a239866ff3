package history

import "time"

// Entry is one quiz result belonging to a user. Score keeps the
// acertos/total form ("7/10") the quiz client submits.
type Entry struct {
	ID           int64
	Categoria    string
	Score        string
	DataInsercao time.Time
	UsuarioID    int64

	// UsuarioNome is filled only by queries that join the owner row.
	UsuarioNome string
}
