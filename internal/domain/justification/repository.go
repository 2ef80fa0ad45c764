package justification

import "context"

type JustificationRepository interface {
	List(ctx context.Context, filter Filter) ([]Justification, error)
	GetByID(ctx context.Context, id string) (Justification, error)
	Create(ctx context.Context, j Justification) (Justification, error)
	Update(ctx context.Context, req UpdateJustificationRequest) (Justification, error)
	Delete(ctx context.Context, id string) error

	// CountByType counts the justifications matching filter per type
	CountByType(ctx context.Context, filter Filter) (map[Type]int, error)
}
