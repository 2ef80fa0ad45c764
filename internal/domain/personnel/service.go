package personnel

import "context"

type PersonnelService interface {
	List(ctx context.Context, search string) ([]PersonnelResponse, error)
	Get(ctx context.Context, id string) (PersonnelResponse, error)
	Create(ctx context.Context, req CreatePersonnelRequest) (PersonnelResponse, error)
	Update(ctx context.Context, req UpdatePersonnelRequest) (PersonnelResponse, error)
	Delete(ctx context.Context, id string) error
}
