package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/anonto42/medishare/backend/internal/repositories"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// FirebaseTokenVerifier is satisfied by *auth.Client and *firebase.Verifier.
type FirebaseTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AccountService is the account collaborator: signup, login and lookups.
type AccountService interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	FirebaseLogin(ctx context.Context, idToken string) (string, error)
	GetAccount(ctx context.Context, id uint) (*models.User, error)
}

type accountService struct {
	users     repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	firebase  FirebaseTokenVerifier
}

// NewAccountService builds the account service. firebase may be nil, which
// disables FirebaseLogin.
func NewAccountService(users repositories.UserRepository, jwtSecret string, tokenTTL time.Duration, firebase FirebaseTokenVerifier) AccountService {
	return &accountService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		firebase:  firebase,
	}
}

func (s *accountService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, validationError("email and password are required")
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, persistenceError("find user", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &models.User{
		Name:     req.Name,
		Email:    email,
		Password: string(hashed),
		Address:  req.Address,
		Phone:    req.Phone,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, persistenceError("create user", err)
	}
	return user, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", persistenceError("find user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateJWT(user)
}

// FirebaseLogin exchanges a Firebase ID token for a local JWT, linking or
// creating the account on first sight.
func (s *accountService) FirebaseLogin(ctx context.Context, idToken string) (string, error) {
	if s.firebase == nil {
		return "", fmt.Errorf("%w: firebase login is not configured", ErrAuth)
	}
	token, err := s.firebase.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("%w: invalid firebase id token", ErrAuth)
	}
	uid := token.UID
	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)

	user, err := s.users.GetUserByFirebaseUID(ctx, uid)
	switch {
	case err == nil:
	case errors.Is(err, repositories.ErrNotFound):
		user, err = s.linkFirebaseAccount(ctx, uid, strings.ToLower(email), name)
		if err != nil {
			return "", err
		}
	default:
		return "", persistenceError("find user", err)
	}
	return s.generateJWT(user)
}

func (s *accountService) linkFirebaseAccount(ctx context.Context, uid, email, name string) (*models.User, error) {
	if email != "" {
		user, err := s.users.GetUserByEmail(ctx, email)
		if err == nil {
			user.FirebaseUID = &uid
			if err := s.users.UpdateUser(ctx, user); err != nil {
				return nil, persistenceError("link firebase uid", err)
			}
			return user, nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, persistenceError("find user", err)
		}
	}
	user := &models.User{Name: name, Email: email, FirebaseUID: &uid}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, persistenceError("create user", err)
	}
	return user, nil
}

func (s *accountService) GetAccount(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, persistenceError("get user", err)
	}
	return user, nil
}

func (s *accountService) generateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
