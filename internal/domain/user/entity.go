package user

import "quiz-control/internal/domain/history"

// User is the aggregate root for its quiz-history entries.
type User struct {
	ID         int64
	Nome       string
	Email      string
	SenhaHash  string
	CEP        string
	Logradouro string
	Bairro     string
	Cidade     string
	Estado     string

	Historicos []history.Entry
}
