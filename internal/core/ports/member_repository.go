package ports

import (
	"context"

	"github.com/cezeus/club-api/internal/core/domain"
)

// MemberRepository defines persistence operations for member records.
// Filtering and search are view concerns and stay in the service layer;
// the repository only orders by first surname.
type MemberRepository interface {
	List(ctx context.Context) ([]*domain.Member, error)
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	Create(ctx context.Context, m *domain.Member) error
	Update(ctx context.Context, m *domain.Member) error
	Delete(ctx context.Context, id string) error
}
