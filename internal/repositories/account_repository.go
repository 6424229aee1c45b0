package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"sellora/internal/models"
)

type AccountRepository interface {
	Create(account *models.Account) error
	GetByID(id int) (*models.Account, error)
	GetByEmail(email string) (*models.Account, error)
	GetActiveByEmail(email string) (*models.Account, error)
	ListActive() ([]*models.Account, error)
	ActiveIDs() (map[int]struct{}, error)
	UpdatePassword(id int, passwordHash string) error
	Deactivate(id int) (bool, error)
}

type accountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return &accountRepository{DB: db}
}

// IsUniqueViolation — нарушение UNIQUE-ограничения Postgres (код 23505).
// Гонка "проверили email — вставили" разрешается именно этим ограничением.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *accountRepository) Create(account *models.Account) error {
	const q = `
		INSERT INTO accounts (first_name, last_name, email, password_hash, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q,
		account.FirstName,
		account.LastName,
		account.Email,
		account.PasswordHash,
		account.IsActive,
	).Scan(&account.ID, &account.CreatedAt)
}

func (r *accountRepository) scanOne(row *sql.Row) (*models.Account, error) {
	a := &models.Account{}
	var updatedAt sql.NullTime
	err := row.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.PasswordHash,
		&a.IsActive, &a.CreatedAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		a.UpdatedAt = &t
	}
	return a, nil
}

func (r *accountRepository) GetByID(id int) (*models.Account, error) {
	const q = `
		SELECT id, first_name, last_name, email, password_hash, is_active, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRow(q, id))
}

func (r *accountRepository) GetByEmail(email string) (*models.Account, error) {
	const q = `
		SELECT id, first_name, last_name, email, password_hash, is_active, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`
	return r.scanOne(r.DB.QueryRow(q, email))
}

func (r *accountRepository) GetActiveByEmail(email string) (*models.Account, error) {
	const q = `
		SELECT id, first_name, last_name, email, password_hash, is_active, created_at, updated_at
		FROM accounts
		WHERE email = $1 AND is_active = TRUE
	`
	return r.scanOne(r.DB.QueryRow(q, email))
}

func (r *accountRepository) ListActive() ([]*models.Account, error) {
	const q = `
		SELECT id, first_name, last_name, email, is_active, created_at, updated_at
		FROM accounts
		WHERE is_active = TRUE
		ORDER BY id
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Account
	for rows.Next() {
		a := &models.Account{}
		var updatedAt sql.NullTime
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.IsActive, &a.CreatedAt, &updatedAt); err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			t := updatedAt.Time
			a.UpdatedAt = &t
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

// ActiveIDs — множество id активных аккаунтов; снимается заново на каждый
// list-запрос прокси, кэша нет намеренно.
func (r *accountRepository) ActiveIDs() (map[int]struct{}, error) {
	rows, err := r.DB.Query(`SELECT id FROM accounts WHERE is_active = TRUE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[int]struct{})
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

func (r *accountRepository) UpdatePassword(id int, passwordHash string) error {
	const q = `UPDATE accounts SET password_hash = $1, updated_at = NOW() WHERE id = $2`
	res, err := r.DB.Exec(q, passwordHash, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("account %d not found", id)
	}
	return nil
}

// Deactivate — выключает только активный аккаунт; false = не найден или уже выключен.
func (r *accountRepository) Deactivate(id int) (bool, error) {
	const q = `
		UPDATE accounts
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`
	res, err := r.DB.Exec(q, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
