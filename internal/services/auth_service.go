package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// AuthService — хэширование паролей как подменяемая способность:
// оркестратор не знает алгоритма, только hash/verify.
type AuthService interface {
	HashPassword(plain string) (string, error)
	VerifyPassword(hash, plain string) bool
}

type authService struct {
	cost int
}

func NewAuthService() AuthService {
	return &authService{cost: bcrypt.DefaultCost}
}

func (s *authService) HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// VerifyPassword — любое несовпадение, включая битый хэш, читается как
// "не подтверждено"; это bool, а не ошибка.
func (s *authService) VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
