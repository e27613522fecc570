package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/falaklabs/natal-api/internal/core/domain"
)

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	u := *user
	u.ID = "user-" + user.Email
	r.users[user.Email] = &u
	return &u, nil
}

func TestAuthService_Register(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "  Amina@Example.COM ", "hunter2pass", "Amina")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "amina@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "hunter2pass" || user.PasswordHash == "" {
		t.Error("password stored without hashing")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2pass")) != nil {
		t.Error("stored hash does not match the password")
	}

	if _, err := svc.Register(context.Background(), "amina@example.com", "other", "dup"); !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("duplicate register err = %v, want ErrUserExists", err)
	}
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "", "pass", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty email err = %v", err)
	}
	if _, err := svc.Register(context.Background(), "a@b.c", "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty password err = %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "yusuf@example.com", "correct-horse", "Yusuf"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "Yusuf@Example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Email != "yusuf@example.com" {
		t.Errorf("user email = %q", user.Email)
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != user.ID {
		t.Errorf("sub claim = %v, want %v", claims["sub"], user.ID)
	}
	if claims["email"] != "yusuf@example.com" {
		t.Errorf("email claim = %v", claims["email"])
	}
}

func TestAuthService_Login_Failures(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	if _, err := svc.Register(context.Background(), "yusuf@example.com", "correct-horse", "Yusuf"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "x"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("unknown user err = %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "yusuf@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty credentials err = %v", err)
	}
}
