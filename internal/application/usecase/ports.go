package usecase

import (
	"context"

	"github.com/jhoicas/community-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repos atados a una misma transacción.
// Lo usa CreateCommunity para que el insert de la comunidad y la inscripción del
// owner sean una sola unidad: si la membresía falla, la comunidad no queda huérfana.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		communityRepo repository.CommunityRepository,
		memberRepo repository.MemberRepository,
	) error) error
}
