package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chapterhub/internal/app"
	"github.com/alexanderramin/chapterhub/internal/db"
	"github.com/alexanderramin/chapterhub/internal/source"
)

type seedService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSeedService(uow db.UnitOfWork, observers ...UseCaseObserver) app.SeedUseCase {
	return &seedService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *seedService) Seed(ctx context.Context, req app.SeedRequest) (resp *app.SeedResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": req.Path}
	defer observe(ctx, s.observer, "seed", startedAt, fields, &err)

	f, err := source.LoadFixture(req.Path)
	if err != nil {
		return nil, fmt.Errorf("loading fixture: %w", err)
	}
	res, err := source.SeedFixture(ctx, s.uow, f)
	if err != nil {
		return nil, err
	}
	fields["shifts"] = res.Shifts
	fields["events"] = res.Events
	fields["tasks"] = res.Tasks

	return &app.SeedResponse{
		Projects: res.Projects,
		Groups:   res.Groups,
		Shifts:   res.Shifts,
		Events:   res.Events,
		Tasks:    res.Tasks,
	}, nil
}
