package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService issues and validates JWTs. Identity resolution proper is
// an external concern; this service only attaches userID and role to
// requests the way the rest of the platform expects them.
type AuthService struct {
	adminUsername string
	adminPassword string
	jwtSecret     []byte
	activitySvc   *ActivityService
}

// NewAuthService creates a new auth service
func NewAuthService(adminUsername, adminPassword, jwtSecret string, activitySvc *ActivityService) *AuthService {
	return &AuthService{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		jwtSecret:     []byte(jwtSecret),
		activitySvc:   activitySvc,
	}
}

// Login validates admin credentials and returns a token. Unknown
// usernames join as participants under a fresh identity.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	role := model.RoleParticipant
	if username == s.adminUsername {
		if password != s.adminPassword {
			return nil, ErrInvalidCredentials
		}
		role = model.RoleAdmin
	}

	userID := string(role) + "_" + uuid.New().String()[:8]
	token, err := s.generateToken(userID, username, role)
	if err != nil {
		return nil, err
	}

	if s.activitySvc != nil {
		s.activitySvc.Log(ctx, userID, model.ActionLogin, model.EntityUser, userID, map[string]string{"username": username})
	}

	return &model.LoginResponse{
		Token:    token,
		UserID:   userID,
		Username: username,
		Role:     role,
	}, nil
}

func (s *AuthService) generateToken(userID, username string, role model.Role) (string, error) {
	claims := &model.UserClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a JWT and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
