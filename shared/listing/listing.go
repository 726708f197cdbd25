// Package listing keeps the state of a paginated, filterable admin table
// with a detail panel, one per admin session and resource.
package listing

import (
	"context"
	"fmt"
	"serenity/shared"
	"serenity/shared/cache"
	"serenity/shared/constant"
	"serenity/shared/dto"
	"serenity/shared/failure"
	"slices"

	"github.com/rs/zerolog/log"
)

// Query is what a resource is asked to fetch. Empty Status or Type means no filter.
type Query struct {
	Status string
	Type   string
	Offset int
	Limit  int
}

type Page[T any] struct {
	Rows  []T
	Total int
}

// Resource adapts one backend collection to the list flow.
type Resource[T any] interface {
	Fetch(ctx context.Context, token string, query Query) (Page[T], error)
	// Transition returns the row after action; changed is false when there is nothing to send.
	Transition(row T, action string) (next T, changed bool, err error)
	Commit(ctx context.Context, token string, row T, action string) error
	ID(row T) string
	Actions(row T) []string
}

type Row[T any] struct {
	Item    T        `json:"item"`
	Actions []string `json:"actions"`
}

type View[T any] struct {
	Status   string    `json:"status"`
	Type     string    `json:"type"`
	Offset   int       `json:"offset"`
	Limit    int       `json:"limit"`
	Rows     []Row[T]  `json:"rows"`
	Total    int       `json:"total"`
	Error    string    `json:"error,omitempty"`
	Selected *Row[T]   `json:"selected,omitempty"`
	Loaded   bool      `json:"loaded"`
	Pager    dto.Pager `json:"pager"`
}

// Options fixes the filters a resource accepts. A nil Statuses or Types disables that filter.
type Options struct {
	Name     string
	Statuses []string
	Types    []string
	Limit    int
}

// Flow is the set of operations an admin table exposes to its handler.
type Flow[T any] interface {
	Current(ctx context.Context) (View[T], error)
	Refresh(ctx context.Context) (View[T], error)
	SetFilter(ctx context.Context, status, kind string) (View[T], error)
	SetOffset(ctx context.Context, offset int) (View[T], error)
	NextPage(ctx context.Context) (View[T], error)
	PrevPage(ctx context.Context) (View[T], error)
	DismissError(ctx context.Context) (View[T], error)
	Select(ctx context.Context, id string) (View[T], error)
	Close(ctx context.Context) (View[T], error)
	Apply(ctx context.Context, id, action string) (View[T], error)
	Forget(ctx context.Context, sessionID string) error
}

type List[T any] struct {
	resource Resource[T]
	store    *cache.Store[View[T]]
	opts     Options
}

func New[T any](resource Resource[T], store *cache.Store[View[T]], opts Options) *List[T] {
	return &List[T]{resource: resource, store: store, opts: opts}
}

var _ Flow[struct{}] = (*List[struct{}])(nil)

func (l *List[T]) initial() View[T] {
	v := View[T]{Limit: l.opts.Limit, Rows: []Row[T]{}}
	if l.opts.Statuses != nil {
		v.Status = constant.FilterAll
	}
	if l.opts.Types != nil {
		v.Type = constant.FilterAll
	}

	return v
}

func (l *List[T]) load(ctx context.Context) (View[T], error) {
	viewer := shared.ViewerFromContext(ctx)
	if viewer.SessionID == constant.Empty {
		return View[T]{}, failure.SessionRequired
	}

	v, found, err := l.store.Load(ctx, viewer.SessionID)
	if err != nil {
		return v, err
	}
	if !found {
		v = l.initial()
	}

	return v, nil
}

func (l *List[T]) save(ctx context.Context, v *View[T]) error {
	v.Pager = dto.NewPager(v.Offset, v.Limit, v.Total)

	return l.store.Save(context.WithoutCancel(ctx), shared.ViewerFromContext(ctx).SessionID, *v)
}

// mutate loads the view, applies fn, refetches when asked, and stores the result.
func (l *List[T]) mutate(ctx context.Context, refetch bool, fn func(*View[T]) error) (View[T], error) {
	v, err := l.load(ctx)
	if err != nil {
		return v, err
	}

	if !refetch && !v.Loaded {
		l.refresh(ctx, &v)
	}

	if err = fn(&v); err != nil {
		return v, err
	}

	if refetch {
		l.refresh(ctx, &v)
	}

	if err = l.save(ctx, &v); err != nil {
		return v, err
	}

	return v, nil
}

// refresh refetches the current window. Failures only set the banner; loaded rows stay.
func (l *List[T]) refresh(ctx context.Context, v *View[T]) {
	query := Query{Offset: v.Offset, Limit: v.Limit}
	if v.Status != constant.FilterAll {
		query.Status = v.Status
	}
	if v.Type != constant.FilterAll {
		query.Type = v.Type
	}

	page, err := l.resource.Fetch(ctx, shared.ViewerFromContext(ctx).Token, query)
	if err != nil {
		log.Warn().Err(err).Str("list", l.opts.Name).Msg("failed to refresh admin list")
		v.Error = message(err)
		return
	}

	v.Rows = make([]Row[T], 0, len(page.Rows))
	for _, item := range page.Rows {
		v.Rows = append(v.Rows, l.row(item))
	}
	v.Total = page.Total
	v.Loaded = true
}

func (l *List[T]) row(item T) Row[T] {
	return Row[T]{Item: item, Actions: l.resource.Actions(item)}
}

// Current returns the stored view, fetching the first page on first use.
func (l *List[T]) Current(ctx context.Context) (View[T], error) {
	return l.mutate(ctx, false, func(*View[T]) error { return nil })
}

func (l *List[T]) Refresh(ctx context.Context) (View[T], error) {
	return l.mutate(ctx, true, func(*View[T]) error { return nil })
}

// SetFilter changes the status and type filters. Either change returns to the first page.
func (l *List[T]) SetFilter(ctx context.Context, status, kind string) (View[T], error) {
	return l.mutate(ctx, true, func(v *View[T]) error {
		if status != constant.Empty {
			if err := l.check("status", status, l.opts.Statuses); err != nil {
				return err
			}
			if status != v.Status {
				v.Status = status
				v.Offset = 0
			}
		}

		if kind != constant.Empty {
			if err := l.check("type", kind, l.opts.Types); err != nil {
				return err
			}
			if kind != v.Type {
				v.Type = kind
				v.Offset = 0
			}
		}

		return nil
	})
}

func (l *List[T]) check(name, value string, allowed []string) error {
	if allowed == nil || (value != constant.FilterAll && !slices.Contains(allowed, value)) {
		return failure.BadRequestFromString(fmt.Sprintf("%s filter %q is not supported", name, value))
	}

	return nil
}

func (l *List[T]) SetOffset(ctx context.Context, offset int) (View[T], error) {
	return l.mutate(ctx, true, func(v *View[T]) error {
		if offset < 0 {
			return failure.InvalidOffsetParam
		}
		v.Offset = offset

		return nil
	})
}

func (l *List[T]) NextPage(ctx context.Context) (View[T], error) {
	return l.mutate(ctx, true, func(v *View[T]) error {
		v.Offset = dto.NewPager(v.Offset, v.Limit, v.Total).NextOffset()
		return nil
	})
}

func (l *List[T]) PrevPage(ctx context.Context) (View[T], error) {
	return l.mutate(ctx, true, func(v *View[T]) error {
		v.Offset = dto.NewPager(v.Offset, v.Limit, v.Total).PrevOffset()
		return nil
	})
}

func (l *List[T]) DismissError(ctx context.Context) (View[T], error) {
	return l.mutate(ctx, false, func(v *View[T]) error {
		v.Error = constant.Empty
		return nil
	})
}

// Select opens the detail panel for a loaded row.
func (l *List[T]) Select(ctx context.Context, id string) (View[T], error) {
	return l.mutate(ctx, false, func(v *View[T]) error {
		row, ok := l.find(*v, id)
		if !ok {
			return failure.NotFound(l.opts.Name + " not found")
		}
		v.Selected = &row

		return nil
	})
}

func (l *List[T]) Close(ctx context.Context) (View[T], error) {
	return l.mutate(ctx, false, func(v *View[T]) error {
		v.Selected = nil
		return nil
	})
}

// Apply runs one row action. Actions with nothing to change make no request.
// A successful action refetches the list and patches the open detail panel.
func (l *List[T]) Apply(ctx context.Context, id, action string) (View[T], error) {
	v, err := l.load(ctx)
	if err != nil {
		return v, err
	}

	if !v.Loaded {
		l.refresh(ctx, &v)
	}

	row, ok := l.find(v, id)
	if !ok {
		return v, failure.NotFound(l.opts.Name + " not found")
	}

	next, changed, err := l.resource.Transition(row.Item, action)
	if err != nil {
		return v, failure.Conflict(err.Error())
	}

	if !changed {
		return v, nil
	}

	token := shared.ViewerFromContext(ctx).Token
	if err = l.resource.Commit(ctx, token, row.Item, action); err != nil {
		log.Warn().Err(err).Str("list", l.opts.Name).Str("action", action).Msg("row action failed")
		v.Error = message(err)

		return v, l.save(ctx, &v)
	}

	l.refresh(ctx, &v)

	if v.Selected != nil && l.resource.ID(v.Selected.Item) == id {
		patched := l.row(next)
		v.Selected = &patched
	}

	return v, l.save(ctx, &v)
}

// Forget drops the stored view of a session.
func (l *List[T]) Forget(ctx context.Context, sessionID string) error {
	return l.store.Delete(ctx, sessionID)
}

func (l *List[T]) find(v View[T], id string) (Row[T], bool) {
	for _, row := range v.Rows {
		if l.resource.ID(row.Item) == id {
			return row, true
		}
	}

	if v.Selected != nil && l.resource.ID(v.Selected.Item) == id {
		return *v.Selected, true
	}

	return Row[T]{}, false
}

// message is the banner text for err: the backend's own message when there is one.
func message(err error) string {
	if fail, ok := failure.As(err); ok {
		return fail.Message
	}

	return err.Error()
}
