package service

import (
	"context"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/AzmathBegum/finance-tracker/internal/apperr"
	"github.com/AzmathBegum/finance-tracker/internal/entity"
	"github.com/AzmathBegum/finance-tracker/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims are the JWT claims carried by both access and refresh tokens.
type TokenClaims struct {
	UserID    int    `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is the credential pair issued on login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService registers users and issues stateless signed tokens. Token
// issuance leaves no server-side session record.
type AuthService struct {
	users      repository.UserStore
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(users repository.UserStore, secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Register creates a new account. The plaintext password is hashed with
// bcrypt before it reaches the store and is never logged.
func (s *AuthService) Register(ctx context.Context, name, username, email, password string) (*entity.User, error) {
	if !emailPattern.MatchString(email) {
		return nil, apperr.Validationf("invalid email address")
	}
	if username == "" {
		return nil, apperr.Validationf("username is required")
	}
	if password == "" {
		return nil, apperr.Validationf("password is required")
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, apperr.Validationf("email already registered")
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}
	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return nil, apperr.Validationf("username already taken")
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, &entity.User{
		Name:     name,
		Username: username,
		Email:    email,
		Password: string(hash),
	})
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error creating user")
		return nil, err
	}

	logger.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("User registered")
	return user, nil
}

// Login verifies the password and issues an access/refresh token pair.
// An unknown email and a wrong password are distinct failures: the former is
// NotFound, the latter InvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, *entity.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, apperr.InvalidCredentials("invalid password")
	}

	access, err := s.signToken(user, TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, nil, err
	}
	refresh, err := s.signToken(user, TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, nil, err
	}

	logger.Info().Int("user_id", user.ID).Msg("User logged in")
	return &TokenPair{Access: access, Refresh: refresh}, user, nil
}

// VerifyToken parses and validates a signed token of the wanted type and
// returns its claims.
func (s *AuthService) VerifyToken(tokenStr, wantType string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.Auth("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Wrap(apperr.KindAuth, "invalid or expired token", err)
	}
	if claims.TokenType != wantType {
		return nil, apperr.Auth("wrong token type")
	}
	return claims, nil
}

// DeleteUser removes the account with the given email along with all of its
// transactions. This is an operator action, not exposed over HTTP.
func (s *AuthService) DeleteUser(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := s.users.DeleteUser(ctx, user.ID); err != nil {
		return err
	}
	logger.Info().Int("user_id", user.ID).Msg("User deleted")
	return nil
}

func (s *AuthService) signToken(user *entity.User, tokenType string, ttl time.Duration) (string, error) {
	claims := &TokenClaims{
		UserID:    user.ID,
		Email:     user.Email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
