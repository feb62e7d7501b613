package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockcart/storefront/internal/core/domain"
	"github.com/stockcart/storefront/internal/core/ports"
)

// AuthService implements registration, login and session resolution.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger

	now   func() time.Time
	newID func() string

	// registerMu serializes the username check and the insert that follows it.
	registerMu sync.Mutex
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (s *AuthService) Register(ctx context.Context, username, password string, isSeller bool) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	user, err := s.users.CreateUser(ctx, domain.NewUser{
		Username:     username,
		PasswordHash: string(hash),
		IsSeller:     isSeller,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Bool("seller", user.IsSeller).Msg("user registered")
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// An unknown username and a wrong password are indistinguishable to the caller.
	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		s.log.Debug().Str("username", username).Msg("login for unknown user")
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now().UTC()
	session := domain.Session{
		ID:        s.newID(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	token, err := s.generateToken(user, session)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("session_id", session.ID).Msg("user logged in")
	return &ports.LoginResult{Token: token, SessionID: session.ID, User: user}, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.log.Info().Str("session_id", sessionID).Msg("user logged out")
	return nil
}

// Authenticate resolves a session id to its user. Any failure to resolve
// (unknown or expired session, vanished user) reports ErrUnauthenticated.
func (s *AuthService) Authenticate(ctx context.Context, sessionID string) (*domain.User, error) {
	if sessionID == "" {
		return nil, domain.ErrUnauthenticated
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	user, err := s.users.GetUser(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

func (s *AuthService) generateToken(user *domain.User, session domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":       strconv.FormatInt(user.ID, 10),
		"sid":       session.ID,
		"username":  user.Username,
		"is_seller": user.IsSeller,
		"iat":       session.CreatedAt.Unix(),
		"exp":       session.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
