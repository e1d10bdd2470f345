package source

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chapterhub/internal/domain"
)

var demoTaskNames = []string{
	"Confirm volunteer roster",
	"Order supplies",
	"Post chapter newsletter",
	"Follow up with new members",
	"Book meeting room",
}

// DemoTasks is a TaskProvider that makes Count synthetic tasks, one per day
// starting tomorrow at 10:00 in Location. Ids are "demo-1", "demo-2", ...
type DemoTasks struct {
	Count    int
	Now      func() time.Time
	Location *time.Location
}

var _ TaskProvider = DemoTasks{}

func (d DemoTasks) TasksForUser(_ context.Context, _ string) ([]domain.TaskRecord, error) {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}

	today := now().In(loc)
	tasks := make([]domain.TaskRecord, 0, d.Count)
	for i := 0; i < d.Count; i++ {
		start := time.Date(today.Year(), today.Month(), today.Day()+i+1, 10, 0, 0, 0, loc)
		tasks = append(tasks, domain.TaskRecord{
			ID:    fmt.Sprintf("demo-%d", i+1),
			Name:  demoTaskNames[i%len(demoTaskNames)],
			Start: start.Format(time.RFC3339),
			End:   start.Add(time.Hour).Format(time.RFC3339),
		})
	}
	return tasks, nil
}

// WithTasks overrides the task collection of a DataSource.
func WithTasks(src DataSource, tasks TaskProvider) DataSource {
	if tasks == nil {
		return src
	}
	return taskOverride{DataSource: src, tasks: tasks}
}

type taskOverride struct {
	DataSource
	tasks TaskProvider
}

func (o taskOverride) TasksForUser(ctx context.Context, userID string) ([]domain.TaskRecord, error) {
	return o.tasks.TasksForUser(ctx, userID)
}
