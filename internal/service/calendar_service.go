package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chapterhub/internal/app"
	"github.com/alexanderramin/chapterhub/internal/calendar"
	"github.com/alexanderramin/chapterhub/internal/domain"
	"github.com/alexanderramin/chapterhub/internal/source"
)

var (
	ErrItemNotFound   = errors.New("schedule item not found")
	ErrInvalidItemKey = errors.New("invalid item key")
)

type calendarService struct {
	source     source.DataSource
	normalizer *calendar.Normalizer
	windower   *calendar.Windower
	links      calendar.LinkResolver
	observer   UseCaseObserver
}

func NewCalendarService(
	src source.DataSource,
	normalizer *calendar.Normalizer,
	windower *calendar.Windower,
	links calendar.LinkResolver,
	observers ...UseCaseObserver,
) app.CalendarUseCase {
	if links == nil {
		links = calendar.Routes{}
	}
	return &calendarService{
		source:     src,
		normalizer: normalizer,
		windower:   windower,
		links:      links,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *calendarService) View(ctx context.Context, req app.CalendarRequest) (resp *app.CalendarResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"mode": string(req.Mode)}
	defer observe(ctx, s.observer, "calendar-view", startedAt, fields, &err)

	window, err := s.windower.ComputeWindow(req.Mode, req.Anchor)
	if err != nil {
		return nil, err
	}

	result, err := s.load(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	fields["dropped"] = len(result.Dropped)

	filter := req.Filter
	if filter.Categories == nil {
		filter = domain.DefaultFilterState().WithSearch(filter.SearchQuery)
	}
	items := calendar.Filter(result.Items, filter)

	resp = &app.CalendarResponse{
		GeneratedAt: s.windower.Now(),
		Window:      window,
		Items:       calendar.Partition(items, window),
		Links:       make(map[string]string),
		Dropped:     result.Dropped,
	}
	fields["items"] = len(resp.Items)

	switch window.Mode {
	case domain.ModeDay:
		resp.Hours = s.windower.DayBuckets(items, window)
	case domain.ModeWeek:
		resp.Days = s.windower.WeekBuckets(items, window)
	case domain.ModeMonth:
		grid, gridErr := s.windower.MonthGrid(items, window)
		if gridErr != nil {
			return nil, gridErr
		}
		resp.Grid = &grid
	}

	s.addLinks(resp.Links, resp.Items)
	if resp.Grid != nil {
		for _, cell := range resp.Grid.Cells {
			s.addLinks(resp.Links, cell.Items)
		}
	}
	return resp, nil
}

// addLinks resolves a route for every rendered item. Padding cells of a month
// grid render items outside the window, so they are linked too.
func (s *calendarService) addLinks(links map[string]string, items []domain.ScheduleItem) {
	for _, item := range items {
		links[item.Key()] = s.links.ResolveLink(item.Type, item.ID)
	}
}

// Item looks up one normalized item by its type:id key. Dropped records are
// not found.
func (s *calendarService) Item(ctx context.Context, req app.ItemRequest) (detail *app.ItemDetail, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"key": req.Key}
	defer observe(ctx, s.observer, "calendar-item", startedAt, fields, &err)

	itemType, id, ok := strings.Cut(req.Key, ":")
	if !ok || id == "" || !domain.ValidItemTypes[itemType] {
		return nil, fmt.Errorf("parsing %q: %w", req.Key, ErrInvalidItemKey)
	}

	result, err := s.load(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	for _, item := range result.Items {
		if item.Type != domain.ItemType(itemType) || item.ID != id {
			continue
		}
		loc := s.windower.Dates().Location()
		return &app.ItemDetail{
			Item:      item,
			Link:      s.links.ResolveLink(item.Type, item.ID),
			Span:      calendar.FormatSpan(item.Start, item.End),
			TimeRange: calendar.FormatTimeRange(item.Start, item.End, loc),
		}, nil
	}
	return nil, fmt.Errorf("looking up %q: %w", req.Key, ErrItemNotFound)
}

// load fetches every collection for userID and normalizes it.
func (s *calendarService) load(ctx context.Context, userID string) (calendar.NormalizeResult, error) {
	var recs calendar.Records
	var err error

	if recs.Shifts, err = s.source.ShiftsForUser(ctx, userID); err != nil {
		return calendar.NormalizeResult{}, fmt.Errorf("loading shifts: %w", err)
	}
	if recs.Events, err = s.source.EventsWhereUserInvolved(ctx, userID); err != nil {
		return calendar.NormalizeResult{}, fmt.Errorf("loading events: %w", err)
	}
	if recs.Tasks, err = s.source.TasksForUser(ctx, userID); err != nil {
		return calendar.NormalizeResult{}, fmt.Errorf("loading tasks: %w", err)
	}
	if recs.Names, err = s.source.Names(ctx); err != nil {
		return calendar.NormalizeResult{}, fmt.Errorf("loading names: %w", err)
	}

	return s.normalizer.Normalize(userID, recs), nil
}
