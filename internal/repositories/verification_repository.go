package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"sellora/internal/models"
)

type VerificationRepository interface {
	Create(email, code string, expiresAt time.Time) (*models.EmailVerification, error)
	Redeem(email, code string) (bool, error)
	RedeemAndActivate(email, code string) (bool, error)
	LatestVerified(email string) (*models.EmailVerification, error)
}

type verificationRepository struct {
	DB *sql.DB
}

func NewVerificationRepository(db *sql.DB) VerificationRepository {
	return &verificationRepository{DB: db}
}

// Create — каждая отправка кода = новая строка; старые записи не трогаем.
func (r *verificationRepository) Create(email, code string, expiresAt time.Time) (*models.EmailVerification, error) {
	const q = `
		INSERT INTO email_verifications (email, code, expires_at, verified, created_at)
		VALUES ($1, $2, $3, FALSE, NOW())
		RETURNING id, created_at
	`
	v := &models.EmailVerification{Email: email, Code: code, ExpiresAt: expiresAt}
	if err := r.DB.QueryRow(q, email, code, expiresAt).Scan(&v.ID, &v.CreatedAt); err != nil {
		return nil, fmt.Errorf("email_verification create: %w", err)
	}
	return v, nil
}

// redeemQuery гасит код одним условным UPDATE: из совпадающих берётся самая
// свежая непогашенная и непросроченная запись (expires_at DESC). Повторный
// verified=FALSE во внешнем WHERE закрывает гонку двух одновременных попыток:
// проигравшая не находит строку и читается как "код неверен".
const redeemQuery = `
	UPDATE email_verifications
	SET verified = TRUE
	WHERE id = (
		SELECT id FROM email_verifications
		WHERE email = $1 AND code = $2 AND verified = FALSE AND expires_at > NOW()
		ORDER BY expires_at DESC
		LIMIT 1
	) AND verified = FALSE
`

func (r *verificationRepository) Redeem(email, code string) (bool, error) {
	res, err := r.DB.Exec(redeemQuery, email, code)
	if err != nil {
		return false, fmt.Errorf("email_verification redeem: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RedeemAndActivate — погашение кода и активация аккаунта в одной транзакции:
// аккаунт не должен стать активным при непогашенном коде и наоборот.
func (r *verificationRepository) RedeemAndActivate(email, code string) (bool, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return false, fmt.Errorf("email_verification redeem tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(redeemQuery, email, code)
	if err != nil {
		return false, fmt.Errorf("email_verification redeem: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	if _, err := tx.Exec(
		`UPDATE accounts SET is_active = TRUE, updated_at = NOW() WHERE email = $1`,
		email,
	); err != nil {
		return false, fmt.Errorf("account activate: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("email_verification redeem commit: %w", err)
	}
	return true, nil
}

// LatestVerified — самая свежая погашенная и ещё не просроченная запись.
// Второе чтение после Redeem: подтверждение кода и смена пароля — два шага.
func (r *verificationRepository) LatestVerified(email string) (*models.EmailVerification, error) {
	const q = `
		SELECT id, email, code, expires_at, verified, created_at
		FROM email_verifications
		WHERE email = $1 AND verified = TRUE AND expires_at > NOW()
		ORDER BY expires_at DESC
		LIMIT 1
	`
	var v models.EmailVerification
	err := r.DB.QueryRow(q, email).Scan(&v.ID, &v.Email, &v.Code, &v.ExpiresAt, &v.Verified, &v.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("email_verification latest verified: %w", err)
	}
	return &v, nil
}
