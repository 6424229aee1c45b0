package repositories

import (
	"database/sql"
	"fmt"

	"sellora/internal/models"
)

type RoleRepository interface {
	Assign(userID, roleID int) error
	GetByUserID(userID int) (*models.Role, error)
}

type roleRepository struct {
	DB *sql.DB
}

func NewRoleRepository(db *sql.DB) RoleRepository {
	return &roleRepository{DB: db}
}

func (r *roleRepository) Assign(userID, roleID int) error {
	const q = `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`
	if _, err := r.DB.Exec(q, userID, roleID); err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	return nil
}

// GetByUserID — роль аккаунта; схема допускает несколько связок,
// по факту роль одна — берём первую назначенную.
func (r *roleRepository) GetByUserID(userID int) (*models.Role, error) {
	const q = `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.id
		LIMIT 1
	`
	var role models.Role
	if err := r.DB.QueryRow(q, userID).Scan(&role.ID, &role.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("role by user: %w", err)
	}
	return &role, nil
}
