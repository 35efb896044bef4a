package staff

import (
	"context"
	"errors"
	"time"
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("Usuario ou senha invalidos.")
	ErrInvalidToken       = errors.New("Token de acesso invalido ou expirado.")
	ErrForbidden          = errors.New("Acesso restrito à equipe administrativa.")
	ErrUsernameTaken      = errors.New("Ja existe um usuario com este nome.")
	ErrPasswordTooShort   = errors.New("A senha deve ter pelo menos 8 caracteres.")
)

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns an error when password does not match hash.
	Compare(hash, password string) error
}

// Claims are the facts carried by an access token.
type Claims struct {
	UserID    string
	Username  string
	IsStaff   bool
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies access tokens.
type TokenIssuer interface {
	Issue(user *User, now time.Time) (string, time.Time, error)
	Parse(token string) (*Claims, error)
}

// Session is the result of a successful login.
type Session struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

// AuthService authenticates staff.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*Session, error)
	// Authenticate resolves the active user of a token. Inactive users and
	// bad tokens yield ErrInvalidToken.
	Authenticate(ctx context.Context, token string) (*User, error)
	CreateUser(ctx context.Context, username, password string, isStaff bool) (*User, error)
}
