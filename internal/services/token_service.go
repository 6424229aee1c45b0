package services

import (
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sellora/internal/apperrors"
	"sellora/internal/config"
	"sellora/internal/middleware"
	"sellora/internal/models"
	"sellora/internal/repositories"
)

// Время жизни access-токена фиксированное, продления нет — после
// истечения нужен повторный логин.
const tokenTTL = 30 * time.Minute

type TokenService interface {
	Issue(account *models.Account) (string, error)
	TTL() time.Duration
}

type tokenService struct {
	roles repositories.RoleRepository
	cfg   config.JWTConfig
}

func NewTokenService(roles repositories.RoleRepository, cfg config.JWTConfig) TokenService {
	return &tokenService{roles: roles, cfg: cfg}
}

func (s *tokenService) TTL() time.Duration { return tokenTTL }

// Issue — подписанный HS256 токен с клеймами {id, email, имя, роль}.
// Отсутствие роли — серверная ошибка конфигурации, не вина клиента.
func (s *tokenService) Issue(account *models.Account) (string, error) {
	role, err := s.roles.GetByUserID(account.ID)
	if err != nil {
		log.Printf("[token][issue] role lookup failed for userID=%d: err=%v", account.ID, err)
		return "", apperrors.Persistence("Role lookup failed.", err)
	}
	if role == nil {
		log.Printf("[token][issue] no role assigned for userID=%d", account.ID)
		return "", apperrors.RoleNotAssigned("")
	}

	now := time.Now()
	claims := &middleware.Claims{
		UserID: account.ID,
		Email:  account.Email,
		Name:   account.FullName(),
		Role:   role.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		log.Printf("[token][issue] sign failed for userID=%d: err=%v", account.ID, err)
		return "", apperrors.TokenGeneration(err)
	}
	return signed, nil
}
