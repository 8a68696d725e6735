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

var _ repository.CommunityRepository = (*CommunityRepo)(nil)

// CommunityRepo implementación del puerto CommunityRepository sobre PostgreSQL.
type CommunityRepo struct {
	q Querier
}

// NewCommunityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCommunityRepository(q Querier) *CommunityRepo {
	return &CommunityRepo{q: q}
}

// Create persiste una comunidad. Slug duplicado -> domain.ErrSlugAlreadyExists.
// Dos creaciones concurrentes con el mismo slug las resuelve el constraint único,
// no esta función.
func (r *CommunityRepo) Create(community *entity.Community) error {
	query := `
		INSERT INTO communities (id, name, slug, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		community.ID, community.Name, community.Slug, community.OwnerID,
		community.CreatedAt, community.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugAlreadyExists
		}
		return fmt.Errorf("insert community: %w", err)
	}
	return nil
}

// GetByID obtiene una comunidad por ID. nil si no existe.
func (r *CommunityRepo) GetByID(id string) (*entity.Community, error) {
	return r.getOne(`
		SELECT id, name, slug, owner_id, created_at, updated_at
		FROM communities WHERE id = $1`, id)
}

// GetBySlug obtiene una comunidad por slug. nil si no existe.
func (r *CommunityRepo) GetBySlug(slug string) (*entity.Community, error) {
	return r.getOne(`
		SELECT id, name, slug, owner_id, created_at, updated_at
		FROM communities WHERE slug = $1`, slug)
}

func (r *CommunityRepo) getOne(query string, arg any) (*entity.Community, error) {
	var c entity.Community
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Slug, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get community: %w", err)
	}
	return &c, nil
}

// ListWithOwner lista todas las comunidades con el nombre del owner resuelto,
// más recientes primero.
func (r *CommunityRepo) ListWithOwner() ([]*entity.CommunityWithOwner, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.owner_id, c.created_at, c.updated_at, u.name
		FROM communities c
		JOIN users u ON u.id = c.owner_id
		ORDER BY c.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list communities: %w", err)
	}
	defer rows.Close()
	var list []*entity.CommunityWithOwner
	for rows.Next() {
		var c entity.CommunityWithOwner
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt, &c.OwnerName); err != nil {
			return nil, fmt.Errorf("scan community: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListByOwner lista las comunidades de un owner, más recientes primero.
func (r *CommunityRepo) ListByOwner(ownerID string) ([]*entity.Community, error) {
	query := `
		SELECT id, name, slug, owner_id, created_at, updated_at
		FROM communities WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list communities by owner: %w", err)
	}
	defer rows.Close()
	var list []*entity.Community
	for rows.Next() {
		var c entity.Community
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan community: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
