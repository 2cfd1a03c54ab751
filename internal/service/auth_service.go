package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"onemore-backend/internal/config"
	"onemore-backend/internal/dto"
	"onemore-backend/internal/entity"
	"onemore-backend/internal/pkg/apperror"
	"onemore-backend/internal/pkg/logger"
	"onemore-backend/internal/pkg/security"
	"onemore-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Identity is an authenticated caller: the session token that proved it
// and a snapshot of the owning user.
type Identity struct {
	Token string
	User  entity.User
}

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, token string) (*dto.LogoutResponse, error)
	Authenticate(ctx context.Context, token string) (*Identity, error)
}

const (
	maxLoginFailures   = 5
	loginFailureWindow = 15 * time.Minute
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type authService struct {
	store    *repository.DocumentStore
	cfg      *config.Config
	log      logger.ILogger
	failures *cache.Cache
}

func NewAuthService(store *repository.DocumentStore, cfg *config.Config, log logger.ILogger) IAuthService {
	return &authService{
		store:    store,
		cfg:      cfg,
		log:      log,
		failures: cache.New(loginFailureWindow, 5*time.Minute),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)

	if name == "" || email == "" || req.Password == "" {
		return nil, apperror.Validation("Name, email, and password are required.")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperror.Validation("Please provide a valid email.")
	}
	if len(req.Password) < s.cfg.Auth.MinPasswordLength {
		return nil, apperror.Validation(fmt.Sprintf("Password must be at least %d characters.", s.cfg.Auth.MinPasswordLength))
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var res *dto.AuthResponse
	err = s.store.Update(func(doc *entity.Document) (bool, error) {
		if doc.UserByEmail(email) != nil {
			return false, apperror.EmailExists()
		}

		now := time.Now()
		user := entity.User{
			Id:           uuid.NewString(),
			Email:        email,
			Name:         name,
			Avatar:       nil,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		doc.Users = append(doc.Users, user)

		token, err := createSession(doc, user.Id, s.cfg.Auth.SessionTTL)
		if err != nil {
			return false, err
		}

		res = &dto.AuthResponse{User: dto.NewPublicUser(&user), Token: token}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("auth", "user registered", map[string]interface{}{"email": email})
	return res, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperror.Validation("Email and password are required.")
	}

	if s.lockedOut(email) {
		return nil, apperror.TooManyAttempts("Too many failed login attempts. Try again later.")
	}

	var res *dto.AuthResponse
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		user := doc.UserByEmail(email)
		if user == nil || !security.VerifyPassword(req.Password, user.PasswordHash) {
			return false, apperror.InvalidCredentials()
		}

		token, err := createSession(doc, user.Id, s.cfg.Auth.SessionTTL)
		if err != nil {
			return false, err
		}
		user.UpdatedAt = time.Now()

		res = &dto.AuthResponse{User: dto.NewPublicUser(user), Token: token}
		return true, nil
	})
	if err != nil {
		if appErr := apperror.From(err); appErr.Code == "INVALID_CREDENTIALS" {
			s.recordFailure(email)
		}
		return nil, err
	}

	s.failures.Delete(email)
	return res, nil
}

func (s *authService) Logout(ctx context.Context, token string) (*dto.LogoutResponse, error) {
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		if token == "" {
			return false, nil
		}
		if _, ok := doc.Sessions[token]; !ok {
			return false, nil
		}
		delete(doc.Sessions, token)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.LogoutResponse{LoggedOut: true}, nil
}

// Authenticate resolves a bearer token to its owner. An expired session
// is removed as a side effect of the lookup; a token whose user record
// has vanished is treated the same as an unknown token.
func (s *authService) Authenticate(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, apperror.Unauthorized("Invalid or expired token.")
	}

	var identity *Identity
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		session, ok := doc.Sessions[token]
		if !ok {
			return false, apperror.Unauthorized("Invalid or expired token.")
		}
		if session.Expired(time.Now()) {
			delete(doc.Sessions, token)
			return true, apperror.Unauthorized("Invalid or expired token.")
		}
		user := doc.UserById(session.UserId)
		if user == nil {
			return false, apperror.Unauthorized("Invalid or expired token.")
		}
		identity = &Identity{Token: token, User: *user}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return identity, nil
}

// createSession issues a fresh token; existing sessions for the user are
// left alone, so multiple concurrent sessions are allowed.
func createSession(doc *entity.Document, userId string, ttl time.Duration) (string, error) {
	token, err := security.NewSessionToken()
	if err != nil {
		return "", err
	}
	doc.Sessions[token] = entity.Session{
		UserId:    userId,
		ExpiresAt: time.Now().Add(ttl),
	}
	return token, nil
}

func (s *authService) lockedOut(email string) bool {
	if v, ok := s.failures.Get(email); ok {
		if count, ok := v.(int); ok && count >= maxLoginFailures {
			return true
		}
	}
	return false
}

func (s *authService) recordFailure(email string) {
	count := 1
	if v, ok := s.failures.Get(email); ok {
		if prev, ok := v.(int); ok {
			count = prev + 1
		}
	}
	s.failures.Set(email, count, cache.DefaultExpiration)
	if count >= maxLoginFailures {
		s.log.Warn("auth", "login throttle engaged", map[string]interface{}{"email": email, "failures": count})
	}
}
