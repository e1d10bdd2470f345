package app

import "context"

type CalendarUseCase interface {
	View(ctx context.Context, req CalendarRequest) (*CalendarResponse, error)
	Item(ctx context.Context, req ItemRequest) (*ItemDetail, error)
}

type SeedUseCase interface {
	Seed(ctx context.Context, req SeedRequest) (*SeedResponse, error)
}
