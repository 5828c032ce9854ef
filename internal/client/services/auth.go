package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/loankeeper/internal/client/models"
	"github.com/dmitrijs2005/loankeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/loankeeper/internal/common"
	"github.com/dmitrijs2005/loankeeper/internal/logging"
)

// AuthService manages the credential store and the persisted session.
//
// Contract:
//   - Register: create a user and log them in; ErrDuplicateUser if taken,
//     ErrInvalidUserData if a field is blank.
//   - Login: ErrInvalidCredentials on unknown user or wrong password.
//   - Logout: forget the session; idempotent.
//   - Current: the persisted session, or nil when logged out.
//
// Users are never updated or deleted.
type AuthService interface {
	Register(ctx context.Context, username, password, name string) (*models.Session, error)
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.Session, error)
}

type authService struct {
	store kv.Store
	codec SecretCodec
	log   logging.Logger
	now   func() time.Time
}

// NewAuthService constructs an AuthService over store. Passwords are
// encoded with codec.
func NewAuthService(store kv.Store, codec SecretCodec, log logging.Logger) AuthService {
	return &authService{store: store, codec: codec, log: log, now: time.Now}
}

func (a *authService) users(ctx context.Context) (map[string]models.User, error) {
	users := map[string]models.User{}
	if _, err := kv.GetJSON(ctx, a.store, kv.UsersKey, &users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if users == nil {
		users = map[string]models.User{}
	}
	return users, nil
}

// Register creates the user record and the session in one write.
func (a *authService) Register(ctx context.Context, username, password, name string) (*models.Session, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" || strings.TrimSpace(name) == "" {
		return nil, common.ErrInvalidUserData
	}

	users, err := a.users(ctx)
	if err != nil {
		return nil, err
	}
	if _, exists := users[username]; exists {
		return nil, common.ErrDuplicateUser
	}

	secret, err := a.codec.Encode(password)
	if err != nil {
		return nil, fmt.Errorf("encode password: %w", err)
	}

	now := a.now()
	users[username] = models.User{Password: secret, Name: name, CreatedAt: now}
	session := &models.Session{Username: username, Name: name, LoginTime: now}

	entries, err := kv.Marshal(map[string]any{
		kv.UsersKey:       users,
		kv.CurrentUserKey: session,
	})
	if err != nil {
		return nil, err
	}
	if err := a.store.SetMany(ctx, entries); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	a.log.Info(ctx, "user registered", "username", username)
	return session, nil
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	users, err := a.users(ctx)
	if err != nil {
		return nil, err
	}

	user, ok := users[username]
	if !ok {
		a.log.Warn(ctx, "login for unknown user", "username", username)
		return nil, common.ErrInvalidCredentials
	}
	match, err := a.codec.Matches(user.Password, password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !match {
		a.log.Warn(ctx, "login with wrong password", "username", username)
		return nil, common.ErrInvalidCredentials
	}

	session := &models.Session{Username: username, Name: user.Name, LoginTime: a.now()}
	if err := kv.SetJSON(ctx, a.store, kv.CurrentUserKey, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	a.log.Info(ctx, "user logged in", "username", username)
	return session, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Delete(ctx, kv.CurrentUserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.log.Debug(ctx, "session cleared")
	return nil
}

func (a *authService) Current(ctx context.Context) (*models.Session, error) {
	var s models.Session
	found, err := kv.GetJSON(ctx, a.store, kv.CurrentUserKey, &s)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !found || s.Username == "" {
		return nil, nil
	}
	return &s, nil
}
