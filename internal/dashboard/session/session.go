// Package session holds a transient edit copy of one scheme and its ordered
// components. The drafts are mutated field by field and flushed back as a
// batch of independent update calls on commit; cancel discards them without
// touching the network.
package session

import (
	"context"
	"sync"

	"schememonitor/internal/dashboard/gateway"
)

// Gateway is the slice of the REST client the session needs.
type Gateway interface {
	UpdateScheme(ctx context.Context, scheme gateway.Scheme) error
	UpdateComponent(ctx context.Context, compID int, update gateway.ComponentUpdate) error
	GetScheme(ctx context.Context, gsNo int) (*gateway.Scheme, error)
	ListComponents(ctx context.Context, gsNo int) ([]gateway.Component, error)
}

type Session struct {
	gw         Gateway
	scheme     gateway.Scheme
	components []gateway.Component
}

// Begin deep-copies the canonical state into session drafts. The inputs stay
// untouched so cancelling restores them by simply discarding the session.
func Begin(gw Gateway, scheme gateway.Scheme, components []gateway.Component) *Session {
	drafts := make([]gateway.Component, len(components))
	for i, comp := range components {
		drafts[i] = comp
		drafts[i].BeforeImages = append([]string(nil), comp.BeforeImages...)
		drafts[i].AfterImages = append([]string(nil), comp.AfterImages...)
	}

	return &Session{gw: gw, scheme: scheme, components: drafts}
}

// Scheme exposes the scheme draft for field edits.
func (s *Session) Scheme() *gateway.Scheme {
	return &s.scheme
}

// Component exposes one component draft by index. The draft list keeps the
// fetch order, so index addressing stays stable through the session.
func (s *Session) Component(index int) *gateway.Component {
	if index < 0 || index >= len(s.components) {
		return nil
	}
	return &s.components[index]
}

func (s *Session) ComponentCount() int {
	return len(s.components)
}

// Commit flushes the drafts: one whole-record scheme update plus one update
// per component, all issued concurrently with no atomicity. The component
// payload carries only component_name, starting_date and gs_no; image lists
// and the visibility flag are deliberately left out of the batch.
//
// Whatever the per-call outcomes, the canonical state is refetched and
// returned so the caller resynchronizes its view. The first error seen, if
// any, comes back alongside it.
func (s *Session) Commit(ctx context.Context) (*gateway.Scheme, []gateway.Component, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	record := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		record(s.gw.UpdateScheme(ctx, s.scheme))
	}()

	for i := range s.components {
		comp := s.components[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := comp.ComponentName
			date := comp.StartingDate
			gsNo := comp.GsNo
			record(s.gw.UpdateComponent(ctx, comp.CompID, gateway.ComponentUpdate{
				ComponentName: &name,
				StartingDate:  &date,
				GsNo:          &gsNo,
			}))
		}()
	}

	wg.Wait()

	scheme, err := s.gw.GetScheme(ctx, s.scheme.GsNo)
	record(err)
	components, err := s.gw.ListComponents(ctx, s.scheme.GsNo)
	record(err)

	return scheme, components, firstErr
}

// Cancel discards the drafts. No network calls are made; an update already
// in flight from an earlier Commit is not recalled.
func (s *Session) Cancel() {
	s.components = nil
}
