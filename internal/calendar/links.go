package calendar

import (
	"net/url"

	"github.com/alexanderramin/chapterhub/internal/domain"
)

// LinkResolver maps an item to its detail route.
type LinkResolver interface {
	ResolveLink(t domain.ItemType, id string) string
}

// Routes resolves items to /events/{id}, /shifts/{id} and /tasks/{id}.
type Routes struct{}

func (Routes) ResolveLink(t domain.ItemType, id string) string {
	id = url.PathEscape(id)
	switch t {
	case domain.ItemEvent:
		return "/events/" + id
	case domain.ItemShift:
		return "/shifts/" + id
	case domain.ItemTask:
		return "/tasks/" + id
	default:
		return ""
	}
}
