package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/community-api/internal/domain"
	"github.com/jhoicas/community-api/internal/domain/entity"
	"github.com/jhoicas/community-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un rol. Nombre duplicado -> domain.ErrRoleAlreadyExists.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRoleAlreadyExists
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID. nil si no existe.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	return r.getOne(`SELECT id, name, created_at, updated_at FROM roles WHERE id = $1`, id)
}

// GetByName obtiene un rol por nombre. nil si no existe.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	return r.getOne(`SELECT id, name, created_at, updated_at FROM roles WHERE name = $1`, name)
}

func (r *RoleRepo) getOne(query string, arg any) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// List lista el catálogo completo, más recientes primero.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM roles ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Count devuelve la cantidad de roles en el catálogo.
func (r *RoleRepo) Count() (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM roles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count roles: %w", err)
	}
	return count, nil
}
