package models

import "time"

// EmailVerification — одна запись на каждый выданный код.
// Записи только добавляются; повторная отправка никогда не переиспользует строку.
type EmailVerification struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired — срок действия вычисляется при чтении, отдельного статуса в БД нет.
func (v *EmailVerification) Expired(now time.Time) bool {
	return v.ExpiresAt.Before(now)
}
