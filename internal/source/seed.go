package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/alexanderramin/chapterhub/internal/db"
)

// SeedResult counts the rows written by SeedFixture.
type SeedResult struct {
	Projects int
	Groups   int
	Shifts   int
	Events   int
	Tasks    int
}

// SeedFixture validates f and writes it to the store in one transaction.
// Records without an id get a generated one. Existing rows with the same id
// are replaced.
func SeedFixture(ctx context.Context, uow db.UnitOfWork, f *Fixture) (*SeedResult, error) {
	if errs := ValidateFixture(f); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	res := &SeedResult{}
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, p := range f.Projects {
			if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO projects (id, name) VALUES (?, ?)`, p.ID, p.Name); err != nil {
				return fmt.Errorf("inserting project %q: %w", p.ID, err)
			}
			res.Projects++
		}
		for _, g := range f.Groups {
			if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO chapter_groups (id, name) VALUES (?, ?)`, g.ID, g.Name); err != nil {
				return fmt.Errorf("inserting group %q: %w", g.ID, err)
			}
			res.Groups++
		}
		for _, s := range f.Shifts {
			if err := insertShift(ctx, tx, s); err != nil {
				return err
			}
			res.Shifts++
		}
		for _, e := range f.Events {
			if err := insertEvent(ctx, tx, e); err != nil {
				return err
			}
			res.Events++
		}
		for _, t := range f.Tasks {
			if err := insertTask(ctx, tx, t); err != nil {
				return err
			}
			res.Tasks++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func insertShift(ctx context.Context, tx db.DBTX, s ShiftFixture) error {
	id := idOrNew(s.ID)
	start, end, rule := timeframeColumns(s.Timeframe.record())

	if err := deleteByID(ctx, tx, id, `DELETE FROM shift_assignees WHERE shift_id = ?`, `DELETE FROM shifts WHERE id = ?`); err != nil {
		return fmt.Errorf("replacing shift %q: %w", id, err)
	}
	query := `INSERT INTO shifts (id, name, project_id, location, tf_start, tf_end, tf_rule)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, query, id, s.Name, s.ProjectID, s.Location, start, end, rule); err != nil {
		return fmt.Errorf("inserting shift %q: %w", id, err)
	}
	for _, user := range s.Assignees {
		_, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO shift_assignees (shift_id, user_id) VALUES (?, ?)`, id, user)
		if err != nil {
			return fmt.Errorf("assigning %q to shift %q: %w", user, id, err)
		}
	}
	return nil
}

func insertEvent(ctx context.Context, tx db.DBTX, e EventFixture) error {
	rec := e.Record()
	rec.ID = idOrNew(rec.ID)
	start, end, _ := timeframeColumns(rec.Timeframe)

	if err := deleteByID(ctx, tx, rec.ID, `DELETE FROM event_participants WHERE event_id = ?`, `DELETE FROM events WHERE id = ?`); err != nil {
		return fmt.Errorf("replacing event %q: %w", rec.ID, err)
	}
	query := `INSERT INTO events (id, name, kind, group_id, project_id, location,
		tf_start, tf_end, start_date, end_date, price, tickets_available)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, query,
		rec.ID, rec.Name, rec.Kind, rec.GroupID, rec.ProjectID, rec.Location,
		start, end, rec.StartDate, rec.EndDate,
		nullableFloat(rec.Price), nullableInt(rec.TicketsAvailable),
	)
	if err != nil {
		return fmt.Errorf("inserting event %q: %w", rec.ID, err)
	}
	for _, user := range rec.Participants {
		_, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO event_participants (event_id, user_id) VALUES (?, ?)`, rec.ID, user)
		if err != nil {
			return fmt.Errorf("adding %q to event %q: %w", user, rec.ID, err)
		}
	}
	return nil
}

func insertTask(ctx context.Context, tx db.DBTX, t TaskFixture) error {
	id := idOrNew(t.ID)
	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("replacing task %q: %w", id, err)
	}
	query := `INSERT INTO tasks (id, name, assignee, project_id, location, start_at, end_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, query, id, t.Name, t.Assignee, t.ProjectID, t.Location, t.Start, t.End); err != nil {
		return fmt.Errorf("inserting task %q: %w", id, err)
	}
	return nil
}

// deleteByID clears child rows explicitly; foreign key enforcement is a
// per-connection setting.
func deleteByID(ctx context.Context, tx db.DBTX, id string, stmts ...string) error {
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return err
		}
	}
	return nil
}

func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}

func formatValidationErrors(errs []error) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = "  - " + e.Error()
	}
	return fmt.Errorf("fixture validation failed (%d errors):\n%s", len(errs), strings.Join(msgs, "\n"))
}
