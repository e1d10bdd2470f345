package source

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/chapterhub/internal/db"
	"github.com/alexanderramin/chapterhub/internal/domain"
)

// SQLiteSource implements DataSource over the SQLite store.
type SQLiteSource struct {
	db db.DBTX
}

func NewSQLiteSource(conn db.DBTX) *SQLiteSource {
	return &SQLiteSource{db: conn}
}

var _ DataSource = (*SQLiteSource)(nil)

func (s *SQLiteSource) ShiftsForUser(ctx context.Context, userID string) ([]domain.ShiftRecord, error) {
	query := `SELECT s.id, s.name, s.project_id, s.location, s.tf_start, s.tf_end, s.tf_rule
		FROM shifts s
		JOIN shift_assignees a ON a.shift_id = s.id
		WHERE a.user_id = ?
		ORDER BY s.seq`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing shifts for user: %w", err)
	}
	defer rows.Close()

	var shifts []domain.ShiftRecord
	for rows.Next() {
		var r domain.ShiftRecord
		var tfStart, tfEnd sql.NullString
		var rule string
		if err := rows.Scan(&r.ID, &r.Name, &r.ProjectID, &r.Location, &tfStart, &tfEnd, &rule); err != nil {
			return nil, fmt.Errorf("scanning shift row: %w", err)
		}
		r.Timeframe = scanTimeframe(tfStart, tfEnd, rule)
		shifts = append(shifts, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shifts: %w", err)
	}

	assignees, err := s.assigneesForUserShifts(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range shifts {
		shifts[i].Assignees = assignees[shifts[i].ID]
	}
	return shifts, nil
}

// assigneesForUserShifts loads the full assignee lists of every shift userID is on.
func (s *SQLiteSource) assigneesForUserShifts(ctx context.Context, userID string) (map[string][]string, error) {
	query := `SELECT shift_id, user_id FROM shift_assignees
		WHERE shift_id IN (SELECT shift_id FROM shift_assignees WHERE user_id = ?)
		ORDER BY shift_id, rowid`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing shift assignees: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var shiftID, user string
		if err := rows.Scan(&shiftID, &user); err != nil {
			return nil, fmt.Errorf("scanning shift assignee: %w", err)
		}
		out[shiftID] = append(out[shiftID], user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shift assignees: %w", err)
	}
	return out, nil
}

func (s *SQLiteSource) EventsWhereUserInvolved(ctx context.Context, userID string) ([]domain.EventRecord, error) {
	query := `SELECT e.id, e.name, e.kind, e.group_id, e.project_id, e.location,
		e.tf_start, e.tf_end, e.start_date, e.end_date, e.price, e.tickets_available
		FROM events e
		JOIN event_participants p ON p.event_id = e.id
		WHERE p.user_id = ?
		ORDER BY e.seq`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing events for user: %w", err)
	}
	defer rows.Close()

	var events []domain.EventRecord
	for rows.Next() {
		var r domain.EventRecord
		var tfStart, tfEnd sql.NullString
		var price sql.NullFloat64
		var tickets sql.NullInt64
		err := rows.Scan(
			&r.ID, &r.Name, &r.Kind, &r.GroupID, &r.ProjectID, &r.Location,
			&tfStart, &tfEnd, &r.StartDate, &r.EndDate, &price, &tickets,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		r.Timeframe = scanTimeframe(tfStart, tfEnd, "")
		r.Price = floatPtr(price)
		r.TicketsAvailable = intPtr(tickets)
		events = append(events, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

func (s *SQLiteSource) TasksForUser(ctx context.Context, userID string) ([]domain.TaskRecord, error) {
	query := `SELECT id, name, project_id, location, start_at, end_at
		FROM tasks WHERE assignee = ? ORDER BY seq`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks for user: %w", err)
	}
	defer rows.Close()

	var tasks []domain.TaskRecord
	for rows.Next() {
		var r domain.TaskRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.ProjectID, &r.Location, &r.Start, &r.End); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (s *SQLiteSource) Names(ctx context.Context) (domain.NameIndex, error) {
	projects, err := s.nameMap(ctx, `SELECT id, name FROM projects`)
	if err != nil {
		return domain.NameIndex{}, fmt.Errorf("loading project names: %w", err)
	}
	groups, err := s.nameMap(ctx, `SELECT id, name FROM chapter_groups`)
	if err != nil {
		return domain.NameIndex{}, fmt.Errorf("loading group names: %w", err)
	}
	return domain.NameIndex{Projects: projects, Groups: groups}, nil
}

func (s *SQLiteSource) nameMap(ctx context.Context, query string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

// scanTimeframe returns nil when neither timeframe column is set, which is
// how the store records "no timeframe" as opposed to an empty one.
func scanTimeframe(start, end sql.NullString, rule string) *domain.Timeframe {
	if !start.Valid && !end.Valid {
		return nil
	}
	return &domain.Timeframe{Start: start.String, End: end.String, Rule: rule}
}
