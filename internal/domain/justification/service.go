package justification

import "context"

type JustificationService interface {
	List(ctx context.Context, filter Filter) ([]JustificationResponse, error)
	Get(ctx context.Context, id string) (JustificationResponse, error)
	Create(ctx context.Context, req CreateJustificationRequest) (JustificationResponse, error)
	Update(ctx context.Context, req UpdateJustificationRequest) (JustificationResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, filter Filter) (StatsResponse, error)
}
