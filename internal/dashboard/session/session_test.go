package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schememonitor/internal/dashboard/gateway"
)

// fakeGateway records update calls and serves a fixed canonical state on
// refetch. Commit issues updates concurrently, so recording is locked.
type fakeGateway struct {
	mu sync.Mutex

	schemeUpdates    []gateway.Scheme
	componentUpdates map[int]gateway.ComponentUpdate
	failCompID       int

	canonicalScheme     gateway.Scheme
	canonicalComponents []gateway.Component
	refetches           int
}

func newFakeGateway(scheme gateway.Scheme, components []gateway.Component) *fakeGateway {
	return &fakeGateway{
		componentUpdates:    map[int]gateway.ComponentUpdate{},
		canonicalScheme:     scheme,
		canonicalComponents: components,
	}
}

func (f *fakeGateway) UpdateScheme(ctx context.Context, scheme gateway.Scheme) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.schemeUpdates = append(f.schemeUpdates, scheme)
	return nil
}

func (f *fakeGateway) UpdateComponent(ctx context.Context, compID int, update gateway.ComponentUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCompID != 0 && compID == f.failCompID {
		return errors.New("update failed")
	}
	f.componentUpdates[compID] = update
	return nil
}

func (f *fakeGateway) GetScheme(ctx context.Context, gsNo int) (*gateway.Scheme, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refetches++
	scheme := f.canonicalScheme
	return &scheme, nil
}

func (f *fakeGateway) ListComponents(ctx context.Context, gsNo int) ([]gateway.Component, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]gateway.Component, len(f.canonicalComponents))
	copy(out, f.canonicalComponents)
	return out, nil
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.schemeUpdates) + len(f.componentUpdates) + f.refetches
}

func testState() (gateway.Scheme, []gateway.Component) {
	scheme := gateway.Scheme{GsNo: 1001, NameOfScheme: "Canal Rehabilitation", PhysicalProgress: 40}
	components := []gateway.Component{
		{CompID: 1, ComponentName: "A", StartingDate: "01-01-2026", GsNo: 1001, IsActive: true, BeforeImages: []string{"b1.jpg"}},
		{CompID: 2, ComponentName: "B", StartingDate: "Not started", GsNo: 1001, IsActive: true},
		{CompID: 3, ComponentName: "C", StartingDate: "15-03-2026", GsNo: 1001, IsActive: false},
	}
	return scheme, components
}

func TestCancelLeavesCanonicalUntouched(t *testing.T) {
	scheme, components := testState()
	gw := newFakeGateway(scheme, components)

	s := Begin(gw, scheme, components)
	s.Scheme().NameOfScheme = "Renamed"
	s.Scheme().PhysicalProgress = 99
	s.Component(0).ComponentName = "Changed"
	s.Component(0).BeforeImages[0] = "other.jpg"
	s.Component(2).StartingDate = "today"
	s.Cancel()

	// the inputs Begin copied from are byte-identical to before
	assert.Equal(t, "Canal Rehabilitation", scheme.NameOfScheme)
	assert.Equal(t, 40.0, scheme.PhysicalProgress)
	assert.Equal(t, "A", components[0].ComponentName)
	assert.Equal(t, []string{"b1.jpg"}, components[0].BeforeImages)
	assert.Equal(t, "15-03-2026", components[2].StartingDate)

	// no network calls of any kind
	assert.Equal(t, 0, gw.callCount())
}

func TestCommitIssuesOneSchemePlusNComponentUpdates(t *testing.T) {
	scheme, components := testState()
	gw := newFakeGateway(scheme, components)

	s := Begin(gw, scheme, components)
	s.Scheme().PhysicalProgress = 55
	s.Component(1).ComponentName = "B updated"

	_, _, err := s.Commit(context.Background())
	require.NoError(t, err)

	require.Len(t, gw.schemeUpdates, 1)
	assert.Equal(t, 55.0, gw.schemeUpdates[0].PhysicalProgress)

	require.Len(t, gw.componentUpdates, 3)
	for _, compID := range []int{1, 2, 3} {
		assert.Contains(t, gw.componentUpdates, compID)
	}
	assert.Equal(t, "B updated", *gw.componentUpdates[2].ComponentName)
}

func TestCommitPayloadCarriesOnlyNameDateAndScheme(t *testing.T) {
	scheme, components := testState()
	gw := newFakeGateway(scheme, components)

	s := Begin(gw, scheme, components)
	_, _, err := s.Commit(context.Background())
	require.NoError(t, err)

	update := gw.componentUpdates[1]
	assert.NotNil(t, update.ComponentName)
	assert.NotNil(t, update.StartingDate)
	assert.NotNil(t, update.GsNo)
	assert.Nil(t, update.IsActive)
	assert.Nil(t, update.BeforeImages)
	assert.Nil(t, update.AfterImages)
}

func TestCommitRefetchesCanonicalState(t *testing.T) {
	scheme, components := testState()
	gw := newFakeGateway(scheme, components)
	gw.canonicalScheme.PhysicalProgress = 77

	s := Begin(gw, scheme, components)
	s.Scheme().PhysicalProgress = 55

	gotScheme, gotComponents, err := s.Commit(context.Background())
	require.NoError(t, err)

	// the returned state is what the server holds, not the local draft
	assert.Equal(t, 77.0, gotScheme.PhysicalProgress)
	assert.Len(t, gotComponents, 3)
	assert.Equal(t, 1, gw.refetches)
}

func TestCommitPartialFailureStillRefetches(t *testing.T) {
	scheme, components := testState()
	gw := newFakeGateway(scheme, components)
	gw.failCompID = 2

	s := Begin(gw, scheme, components)
	gotScheme, gotComponents, err := s.Commit(context.Background())

	require.Error(t, err)
	assert.NotNil(t, gotScheme)
	assert.NotNil(t, gotComponents)
	assert.Equal(t, 1, gw.refetches)
	// the two other component updates still went through
	assert.Len(t, gw.componentUpdates, 2)
}
