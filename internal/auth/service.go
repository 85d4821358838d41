package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tcpworld-api/internal/apperr"
	"tcpworld-api/internal/models"
)

// UserStore is the persistence surface the auth service needs. Lookups
// return (nil, nil) when no row matches.
type UserStore interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

// Service issues and validates credentials. Tokens are stateless HS256 JWTs;
// there is no revocation list, so a token stays valid until expiry even if
// the user record changes underneath it.
type Service struct {
	Users    UserStore
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewService(users UserStore, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		Users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// IssueToken signs {sub: userID, exp: now + TTL}.
func (s *Service) IssueToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(s.now().Add(s.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies signature and expiry and returns the subject.
// Every failure mode collapses to Unauthorized.
func (s *Service) ValidateToken(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return "", apperr.New(apperr.Unauthorized, "Could not validate credentials")
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", apperr.New(apperr.Unauthorized, "Could not validate credentials")
	}
	return claims.Subject, nil
}

// ResolveToken maps a bearer token to its user record. A valid token whose
// user has since disappeared is also Unauthorized.
func (s *Service) ResolveToken(ctx context.Context, tokenString string) (*models.User, error) {
	userID, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	user, err := s.Users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.Unauthorized, "Could not validate credentials")
	}
	return user, nil
}

// Register creates an attendee account and logs it straight in.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.TokenResponse, error) {
	existing, err := s.Users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "Email already registered")
	}

	digest, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:             uuid.NewString(),
		Email:          req.Email,
		FullName:       req.FullName,
		Role:           models.RoleAttendee,
		Organization:   req.Organization,
		Phone:          req.Phone,
		HashedPassword: digest,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.Users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.tokenResponse(user)
}

// Login verifies credentials. Unknown email and wrong password produce the
// same message so the endpoint does not reveal which one failed.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error) {
	user, err := s.Users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !CheckPassword(req.Password, user.HashedPassword) {
		return nil, apperr.New(apperr.Unauthorized, "Invalid email or password")
	}
	return s.tokenResponse(user)
}

func (s *Service) tokenResponse(user *models.User) (*models.TokenResponse, error) {
	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}
