// Package memory implementa los puertos de persistencia sobre mapas en memoria.
// Respeta la misma semántica que el adaptador de PostgreSQL, incluidos los
// constraints únicos (email, nombre de rol, slug y el par community/user de
// members), que aquí se hacen cumplir bajo el lock del store. Se usa en tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/community-api/internal/domain"
	"github.com/jhoicas/community-api/internal/domain/entity"
	"github.com/jhoicas/community-api/internal/domain/repository"
)

// Store contiene todas las tablas. Un solo mutex: los inserts con verificación
// de unicidad son atómicos, igual que un constraint en la DB.
type Store struct {
	mu          sync.RWMutex
	users       map[string]entity.User
	roles       map[string]entity.Role
	communities map[string]entity.Community
	members     map[string]entity.Member
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:       make(map[string]entity.User),
		roles:       make(map[string]entity.Role),
		communities: make(map[string]entity.Community),
		members:     make(map[string]entity.Member),
	}
}

// Users devuelve el adaptador de usuarios.
func (s *Store) Users() repository.UserRepository { return &userRepo{s: s} }

// Roles devuelve el adaptador del catálogo de roles.
func (s *Store) Roles() repository.RoleRepository { return &roleRepo{s: s} }

// Communities devuelve el adaptador de comunidades.
func (s *Store) Communities() repository.CommunityRepository { return &communityRepo{s: s} }

// Members devuelve el adaptador de membresías.
func (s *Store) Members() repository.MemberRepository { return &memberRepo{s: s} }

// Run ejecuta fn con los repos del store. No hay rollback: a diferencia del
// TxRunner de PostgreSQL, un fallo a mitad de fn deja los escritos previos.
// Suficiente para tests, donde el primer insert es el que falla.
func (s *Store) Run(ctx context.Context, fn func(
	communityRepo repository.CommunityRepository,
	memberRepo repository.MemberRepository,
) error) error {
	return fn(s.Communities(), s.Members())
}

// ── users ────────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r *userRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if u, ok := r.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *userRepo) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// ── roles ────────────────────────────────────────────────────────────────────

type roleRepo struct{ s *Store }

func (r *roleRepo) Create(role *entity.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.roles {
		if existing.Name == role.Name {
			return domain.ErrRoleAlreadyExists
		}
	}
	r.s.roles[role.ID] = *role
	return nil
}

func (r *roleRepo) GetByID(id string) (*entity.Role, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if role, ok := r.s.roles[id]; ok {
		return &role, nil
	}
	return nil, nil
}

func (r *roleRepo) GetByName(name string) (*entity.Role, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, role := range r.s.roles {
		if role.Name == name {
			role := role
			return &role, nil
		}
	}
	return nil, nil
}

func (r *roleRepo) List() ([]*entity.Role, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Role, 0, len(r.s.roles))
	for _, role := range r.s.roles {
		role := role
		list = append(list, &role)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r *roleRepo) Count() (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.roles), nil
}

// ── communities ──────────────────────────────────────────────────────────────

type communityRepo struct{ s *Store }

func (r *communityRepo) Create(community *entity.Community) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.communities {
		if c.Slug == community.Slug {
			return domain.ErrSlugAlreadyExists
		}
	}
	r.s.communities[community.ID] = *community
	return nil
}

func (r *communityRepo) GetByID(id string) (*entity.Community, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if c, ok := r.s.communities[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *communityRepo) GetBySlug(slug string) (*entity.Community, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.communities {
		if c.Slug == slug {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *communityRepo) ListWithOwner() ([]*entity.CommunityWithOwner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.CommunityWithOwner, 0, len(r.s.communities))
	for _, c := range r.s.communities {
		item := &entity.CommunityWithOwner{Community: c}
		if owner, ok := r.s.users[c.OwnerID]; ok {
			item.OwnerName = owner.Name
		}
		list = append(list, item)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r *communityRepo) ListByOwner(ownerID string) ([]*entity.Community, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Community
	for _, c := range r.s.communities {
		if c.OwnerID == ownerID {
			c := c
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

// ── members ──────────────────────────────────────────────────────────────────

type memberRepo struct{ s *Store }

func (r *memberRepo) Create(member *entity.Member) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.members {
		if m.CommunityID == member.CommunityID && m.UserID == member.UserID {
			return domain.ErrAlreadyMember
		}
	}
	r.s.members[member.ID] = *member
	return nil
}

func (r *memberRepo) GetByID(id string) (*entity.Member, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if m, ok := r.s.members[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *memberRepo) GetByCommunityAndUser(communityID, userID string) (*entity.Member, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.members {
		if m.CommunityID == communityID && m.UserID == userID {
			m := m
			return &m, nil
		}
	}
	return nil, nil
}

func (r *memberRepo) ListByCommunity(communityID string) ([]*entity.MemberDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.MemberDetail
	for _, m := range r.s.members {
		if m.CommunityID != communityID {
			continue
		}
		detail := &entity.MemberDetail{
			ID:          m.ID,
			CommunityID: m.CommunityID,
			UserID:      m.UserID,
			RoleID:      m.RoleID,
			CreatedAt:   m.CreatedAt,
		}
		if u, ok := r.s.users[m.UserID]; ok {
			detail.UserName = u.Name
		}
		if role, ok := r.s.roles[m.RoleID]; ok {
			detail.RoleName = role.Name
		}
		list = append(list, detail)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r *memberRepo) ListByUser(userID string) ([]*entity.JoinedCommunity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.JoinedCommunity
	for _, m := range r.s.members {
		if m.UserID != userID {
			continue
		}
		joined := &entity.JoinedCommunity{
			MemberID:  m.ID,
			RoleID:    m.RoleID,
			CreatedAt: m.CreatedAt,
		}
		if c, ok := r.s.communities[m.CommunityID]; ok {
			joined.Community = c
		}
		list = append(list, joined)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].MemberID > list[j].MemberID
	})
	return list, nil
}

func (r *memberRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.members, id)
	return nil
}
