package personnel

import "context"

type PersonnelRepository interface {
	List(ctx context.Context, search string) ([]Personnel, error)
	GetByID(ctx context.Context, id string) (Personnel, error)
	Create(ctx context.Context, p Personnel) (Personnel, error)
	Update(ctx context.Context, id string, req UpdatePersonnelRequest) (Personnel, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)

	// UpsertNames registers unseen IDs and refreshes the names of known ones;
	// employment dates are left untouched
	UpsertNames(ctx context.Context, people []Personnel) error
}
