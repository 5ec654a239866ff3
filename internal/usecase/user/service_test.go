package user

import (
	"context"
	"errors"
	"testing"

	"quiz-control/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	users  map[int64]user.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[int64]user.User{}, nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailTaken
		}
	}
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserRepo) List(context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(m.users))
	for id := int64(1); id < m.nextID; id++ {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByName(_ context.Context, nome string) (user.User, error) {
	for id := int64(1); id < m.nextID; id++ {
		if u, ok := m.users[id]; ok && u.Nome == nome {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for id := int64(1); id < m.nextID; id++ {
		if u, ok := m.users[id]; ok && u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) Update(_ context.Context, id int64, in user.UpdateFields) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	if in.Nome != nil {
		u.Nome = *in.Nome
	}
	if in.CEP != nil {
		u.CEP = *in.CEP
	}
	if in.Cidade != nil {
		u.Cidade = *in.Cidade
	}
	if in.Estado != nil {
		u.Estado = *in.Estado
	}
	if in.Logradouro != nil {
		u.Logradouro = *in.Logradouro
	}
	if in.Bairro != nil {
		u.Bairro = *in.Bairro
	}
	m.users[id] = u
	return u, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.users[id]; !ok {
		return 0, nil
	}
	delete(m.users, id)
	return 1, nil
}

type spyHistoryCache struct {
	patterns []string
}

func (s *spyHistoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	s.patterns = append(s.patterns, pattern)
	return nil
}

func validCreateInput() CreateInput {
	return CreateInput{
		Nome:       "Ana",
		Email:      "ana@x.com",
		Senha:      "123",
		CEP:        "00000-000",
		Logradouro: "Rua A",
		Bairro:     "B",
		Cidade:     "C",
		Estado:     "SP",
	}
}

func TestService_Create_HashesSenha(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.SenhaHash != "" {
		t.Fatalf("senha hash must not leak out of the usecase")
	}

	stored := repo.users[created.ID]
	if stored.SenhaHash == "123" || stored.SenhaHash == "" {
		t.Fatalf("expected bcrypt digest in store, got %q", stored.SenhaHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.SenhaHash), []byte("123")); err != nil {
		t.Fatalf("stored digest does not match senha: %v", err)
	}
}

func TestService_Create_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, nil)

	if _, err := svc.Create(context.Background(), validCreateInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := svc.Create(context.Background(), validCreateInput())
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("conflict must not create a second row, have %d", len(repo.users))
	}
}

func TestService_Create_MissingFields(t *testing.T) {
	svc := NewService(newMockUserRepo(), nil)

	in := validCreateInput()
	in.Email = "  "
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	in = validCreateInput()
	in.Estado = "SAO"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for 3-letter estado, got %v", err)
	}
}

func TestService_List_IncludesCreatedOnce(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	count := 0
	for _, u := range list {
		if u.ID == created.ID {
			count++
		}
		if u.SenhaHash != "" {
			t.Fatalf("listing must not expose senha hash")
		}
	}
	if count != 1 {
		t.Fatalf("expected created user exactly once, got %d", count)
	}
}

func TestService_GetByName(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, nil)

	if _, err := svc.Create(context.Background(), validCreateInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	u, err := svc.GetByName(context.Background(), "Ana")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Nome != "Ana" {
		t.Fatalf("expected Ana, got %q", u.Nome)
	}

	if _, err := svc.GetByName(context.Background(), "Bruno"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for Bruno, got %v", err)
	}
}

func TestService_Update_PartialLeavesRestUnchanged(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	before := repo.users[created.ID]

	cidade := "Campinas"
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{Cidade: &cidade})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Cidade != "Campinas" {
		t.Fatalf("expected cidade updated, got %q", updated.Cidade)
	}
	if updated.Nome != before.Nome || updated.Email != before.Email ||
		updated.CEP != before.CEP || updated.Estado != before.Estado ||
		updated.Logradouro != before.Logradouro || updated.Bairro != before.Bairro {
		t.Fatalf("partial update touched unrelated fields: %+v", updated)
	}
	if repo.users[created.ID].SenhaHash != before.SenhaHash {
		t.Fatalf("partial update must not touch senha")
	}
}

func TestService_Update_RenameInvalidatesCategoryCache(t *testing.T) {
	repo := newMockUserRepo()
	spy := &spyHistoryCache{}
	svc := NewService(repo, spy)

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	nome := "Ana Clara"
	if _, err := svc.Update(context.Background(), created.ID, UpdateInput{Nome: &nome}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(spy.patterns) != 1 || spy.patterns[0] != "historicos:categoria:*" {
		t.Fatalf("rename must drop cached by-categoria listings, got %v", spy.patterns)
	}

	// the cached rows only carry nome; address changes do not stale them
	cidade := "Campinas"
	if _, err := svc.Update(context.Background(), created.ID, UpdateInput{Cidade: &cidade}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(spy.patterns) != 1 {
		t.Fatalf("address-only update must not touch the cache, got %v", spy.patterns)
	}
}

func TestService_Delete_InvalidatesCategoryCache(t *testing.T) {
	repo := newMockUserRepo()
	spy := &spyHistoryCache{}
	svc := NewService(repo, spy)

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(spy.patterns) != 1 || spy.patterns[0] != "historicos:categoria:*" {
		t.Fatalf("delete must drop cached by-categoria listings, got %v", spy.patterns)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newMockUserRepo(), nil)
	nome := "Novo"
	if _, err := svc.Update(context.Background(), 42, UpdateInput{Nome: &nome}); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.GetByName(context.Background(), "Ana"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for second delete, got %v", err)
	}
}
