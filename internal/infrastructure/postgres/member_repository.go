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

var _ repository.MemberRepository = (*MemberRepo)(nil)

// MemberRepo implementación del puerto MemberRepository sobre PostgreSQL.
// El constraint único compuesto members(community_id, user_id) es el que hace
// cumplir "un rol por usuario por comunidad" bajo concurrencia.
type MemberRepo struct {
	q Querier
}

// NewMemberRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMemberRepository(q Querier) *MemberRepo {
	return &MemberRepo{q: q}
}

// Create persiste una membresía. Par (community, user) duplicado ->
// domain.ErrAlreadyMember; usuario referenciado inexistente -> domain.ErrUserNotFound.
func (r *MemberRepo) Create(member *entity.Member) error {
	query := `
		INSERT INTO members (id, community_id, user_id, role_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		member.ID, member.CommunityID, member.UserID, member.RoleID, member.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyMember
		}
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

// GetByID obtiene una membresía por ID. nil si no existe.
func (r *MemberRepo) GetByID(id string) (*entity.Member, error) {
	query := `
		SELECT id, community_id, user_id, role_id, created_at
		FROM members WHERE id = $1`
	return r.getOne(query, id)
}

// GetByCommunityAndUser obtiene la membresía de un usuario en una comunidad.
// nil si el usuario no pertenece a la comunidad.
func (r *MemberRepo) GetByCommunityAndUser(communityID, userID string) (*entity.Member, error) {
	query := `
		SELECT id, community_id, user_id, role_id, created_at
		FROM members WHERE community_id = $1 AND user_id = $2`
	return r.getOne(query, communityID, userID)
}

func (r *MemberRepo) getOne(query string, args ...any) (*entity.Member, error) {
	var m entity.Member
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&m.ID, &m.CommunityID, &m.UserID, &m.RoleID, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &m, nil
}

// ListByCommunity lista los miembros de una comunidad con usuario y rol
// resueltos, más recientes primero.
func (r *MemberRepo) ListByCommunity(communityID string) ([]*entity.MemberDetail, error) {
	query := `
		SELECT m.id, m.community_id, m.user_id, u.name, m.role_id, ro.name, m.created_at
		FROM members m
		JOIN users u ON u.id = m.user_id
		JOIN roles ro ON ro.id = m.role_id
		WHERE m.community_id = $1
		ORDER BY m.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, communityID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()
	var list []*entity.MemberDetail
	for rows.Next() {
		var m entity.MemberDetail
		if err := rows.Scan(&m.ID, &m.CommunityID, &m.UserID, &m.UserName, &m.RoleID, &m.RoleName, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListByUser lista las membresías de un usuario con la comunidad resuelta,
// más recientes primero.
func (r *MemberRepo) ListByUser(userID string) ([]*entity.JoinedCommunity, error) {
	query := `
		SELECT m.id, m.role_id, m.created_at,
		       c.id, c.name, c.slug, c.owner_id, c.created_at, c.updated_at
		FROM members m
		JOIN communities c ON c.id = m.community_id
		WHERE m.user_id = $1
		ORDER BY m.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()
	var list []*entity.JoinedCommunity
	for rows.Next() {
		var j entity.JoinedCommunity
		if err := rows.Scan(
			&j.MemberID, &j.RoleID, &j.CreatedAt,
			&j.Community.ID, &j.Community.Name, &j.Community.Slug, &j.Community.OwnerID,
			&j.Community.CreatedAt, &j.Community.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}

// Delete elimina una membresía por ID.
func (r *MemberRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}
