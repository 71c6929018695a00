package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/almasbek/forum-api/internal/domain"
	"github.com/almasbek/forum-api/internal/usecase"
	"github.com/google/uuid"
)

// ---- fakes ----

type fakeUserRepo struct {
	create         func(ctx context.Context, username, passwordHash string) (*domain.User, error)
	findByUsername func(ctx context.Context, username string) (*domain.User, error)
	findByID       func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	createCalls int
}

func (r *fakeUserRepo) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	r.createCalls++
	return r.create(ctx, username, passwordHash)
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findByUsername(ctx, username)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findByID(ctx, id)
}

type fakeHasher struct {
	hash   func(plaintext string) (string, error)
	verify func(hash, plaintext string) bool

	hashCalls int
}

func (h *fakeHasher) Hash(plaintext string) (string, error) {
	h.hashCalls++
	if h.hash != nil {
		return h.hash(plaintext)
	}
	return "hashed:" + plaintext, nil
}

func (h *fakeHasher) Verify(hash, plaintext string) bool {
	return h.verify(hash, plaintext)
}

// ---- helpers ----

var testUser = &domain.User{
	ID:           uuid.MustParse("2a4e2f9e-10c3-4b26-9e6a-94cb1b9e3f01"),
	Username:     "alice",
	PasswordHash: "hashed:hunter22",
}

func requireSingleError(t *testing.T, resp *domain.UserResponse, field, message string) {
	t.Helper()
	if resp.User != nil {
		t.Fatalf("expected no user, got %+v", resp.User)
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("expected exactly one field error, got %v", resp.Errors)
	}
	if resp.Errors[0].Field != field || resp.Errors[0].Message != message {
		t.Fatalf("error = %+v, want {%s %s}", resp.Errors[0], field, message)
	}
}

// ---- Register ----

func TestRegister_ShortCredentials_NoHashingNoWrites(t *testing.T) {
	repo := &fakeUserRepo{}
	hasher := &fakeHasher{}
	svc := usecase.NewAuthService(repo, hasher)

	for _, creds := range []domain.Credentials{
		{Username: "ab", Password: "hunter22"},
		{Username: "alice", Password: "ab"},
	} {
		resp, err := svc.Register(context.Background(), creds)
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		if len(resp.Errors) != 1 || resp.User != nil {
			t.Fatalf("expected a single field error and no user, got %+v", resp)
		}
	}

	if hasher.hashCalls != 0 {
		t.Errorf("hasher was called %d times for invalid input", hasher.hashCalls)
	}
	if repo.createCalls != 0 {
		t.Errorf("repository was called %d times for invalid input", repo.createCalls)
	}
}

func TestRegister_Success_ReturnsUserAndStoresHash(t *testing.T) {
	var storedHash string
	repo := &fakeUserRepo{
		create: func(_ context.Context, username, passwordHash string) (*domain.User, error) {
			storedHash = passwordHash
			return &domain.User{ID: testUser.ID, Username: username, PasswordHash: passwordHash}, nil
		},
	}
	svc := usecase.NewAuthService(repo, &fakeHasher{})

	resp, err := svc.Register(context.Background(), domain.Credentials{Username: "alice", Password: "hunter22"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if len(resp.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", resp.Errors)
	}
	if resp.User == nil || resp.User.Username != "alice" {
		t.Fatalf("expected registered user, got %+v", resp.User)
	}
	if storedHash == "hunter22" {
		t.Error("plaintext password was stored")
	}
	if storedHash != "hashed:hunter22" {
		t.Errorf("stored value = %q, want the hasher output", storedHash)
	}
}

func TestRegister_UsernameTaken_ReturnsFieldError(t *testing.T) {
	repo := &fakeUserRepo{
		create: func(_ context.Context, _, _ string) (*domain.User, error) {
			return nil, domain.ErrUsernameTaken
		},
	}
	svc := usecase.NewAuthService(repo, &fakeHasher{})

	resp, err := svc.Register(context.Background(), domain.Credentials{Username: "alice", Password: "hunter22"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	requireSingleError(t, resp, "username", "username already taken")
}

func TestRegister_UnexpectedRepoError_Propagates(t *testing.T) {
	repoErr := errors.New("connection reset")
	repo := &fakeUserRepo{
		create: func(_ context.Context, _, _ string) (*domain.User, error) {
			return nil, repoErr
		},
	}
	svc := usecase.NewAuthService(repo, &fakeHasher{})

	resp, err := svc.Register(context.Background(), domain.Credentials{Username: "alice", Password: "hunter22"})
	if err == nil {
		t.Fatalf("expected error, got response %+v", resp)
	}
	if !errors.Is(err, repoErr) {
		t.Errorf("error %v does not wrap the repository failure", err)
	}
}

// ---- Login ----

func TestLogin_UnknownUsername_ReturnsFieldError(t *testing.T) {
	repo := &fakeUserRepo{
		findByUsername: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	svc := usecase.NewAuthService(repo, &fakeHasher{})

	resp, err := svc.Login(context.Background(), domain.Credentials{Username: "ghost", Password: "hunter22"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	requireSingleError(t, resp, "username", "that username does not exist")
}

func TestLogin_WrongPassword_ReturnsFieldError(t *testing.T) {
	repo := &fakeUserRepo{
		findByUsername: func(_ context.Context, _ string) (*domain.User, error) {
			return testUser, nil
		},
	}
	hasher := &fakeHasher{
		verify: func(_, _ string) bool { return false },
	}
	svc := usecase.NewAuthService(repo, hasher)

	resp, err := svc.Login(context.Background(), domain.Credentials{Username: "alice", Password: "wrong"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	requireSingleError(t, resp, "password", "incorrect password")
}

func TestLogin_Success_ReturnsUser(t *testing.T) {
	var verifiedHash, verifiedPlain string
	repo := &fakeUserRepo{
		findByUsername: func(_ context.Context, _ string) (*domain.User, error) {
			return testUser, nil
		},
	}
	hasher := &fakeHasher{
		verify: func(hash, plaintext string) bool {
			verifiedHash, verifiedPlain = hash, plaintext
			return true
		},
	}
	svc := usecase.NewAuthService(repo, hasher)

	resp, err := svc.Login(context.Background(), domain.Credentials{Username: "alice", Password: "hunter22"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if len(resp.Errors) != 0 || resp.User == nil {
		t.Fatalf("expected user and no errors, got %+v", resp)
	}
	if resp.User.ID != testUser.ID {
		t.Errorf("user ID = %s, want %s", resp.User.ID, testUser.ID)
	}
	if verifiedHash != testUser.PasswordHash || verifiedPlain != "hunter22" {
		t.Errorf("verify called with (%q, %q)", verifiedHash, verifiedPlain)
	}
}

func TestLogin_UnexpectedRepoError_Propagates(t *testing.T) {
	repoErr := errors.New("connection reset")
	repo := &fakeUserRepo{
		findByUsername: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, repoErr
		},
	}
	svc := usecase.NewAuthService(repo, &fakeHasher{})

	_, err := svc.Login(context.Background(), domain.Credentials{Username: "alice", Password: "hunter22"})
	if !errors.Is(err, repoErr) {
		t.Fatalf("error %v does not wrap the repository failure", err)
	}
}

// ---- Me ----

func TestMe_ReturnsUserByID(t *testing.T) {
	repo := &fakeUserRepo{
		findByID: func(_ context.Context, id uuid.UUID) (*domain.User, error) {
			if id != testUser.ID {
				t.Errorf("looked up %s, want %s", id, testUser.ID)
			}
			return testUser, nil
		},
	}
	svc := usecase.NewAuthService(repo, &fakeHasher{})

	user, err := svc.Me(context.Background(), testUser.ID)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if user != testUser {
		t.Fatalf("user = %+v, want testUser", user)
	}
}
