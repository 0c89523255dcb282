package listview

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schememonitor/internal/dashboard/gateway"
)

type fakeLister struct {
	mu      sync.Mutex
	calls   []string
	schemes map[string][]gateway.Scheme
}

func (f *fakeLister) ListSchemes(ctx context.Context, name string) ([]gateway.Scheme, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	return f.schemes[name], nil
}

func (f *fakeLister) callsSnapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

type noopNotifier struct{}

func (noopNotifier) Success(string) {}
func (noopNotifier) Error(string)   {}

func newTestView(schemes map[string][]gateway.Scheme) (*View, *fakeLister) {
	lister := &fakeLister{schemes: schemes}
	return New(lister, noopNotifier{}, 30*time.Millisecond), lister
}

func TestTypingDebouncesToSingleFetch(t *testing.T) {
	view, lister := newTestView(map[string][]gateway.Scheme{
		"Bhera": {{GsNo: 1, NameOfScheme: "Bhera Bypass"}},
	})
	ctx := context.Background()

	// keystrokes arrive well inside the quiet period
	for _, prefix := range []string{"B", "Bh", "Bhe", "Bher", "Bhera"} {
		view.SetSearchText(ctx, prefix)
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	calls := lister.callsSnapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, "Bhera", calls[0])
	require.Len(t, view.Schemes(), 1)
	assert.Equal(t, "Bhera Bypass", view.Schemes()[0].NameOfScheme)
}

func TestDropdownSupersedesText(t *testing.T) {
	view, lister := newTestView(nil)
	ctx := context.Background()

	view.SetSearchText(ctx, "canal")
	view.SetFilterName(ctx, "Bhera Bypass")

	time.Sleep(100 * time.Millisecond)

	calls := lister.callsSnapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, "Bhera Bypass", calls[0])
}

func TestClearedDropdownFallsBackToText(t *testing.T) {
	view, lister := newTestView(nil)
	ctx := context.Background()

	view.SetSearchText(ctx, "canal")
	view.SetFilterName(ctx, "")

	time.Sleep(100 * time.Millisecond)

	calls := lister.callsSnapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, "canal", calls[0])
}

func TestLoadCapturesDropdownNamesOnce(t *testing.T) {
	view, lister := newTestView(map[string][]gateway.Scheme{
		"": {
			{GsNo: 1, NameOfScheme: "Bhera Bypass"},
			{GsNo: 2, NameOfScheme: "Canal Rehabilitation"},
			{GsNo: 3, NameOfScheme: "Bhera Bypass"},
		},
	})
	ctx := context.Background()

	require.NoError(t, view.Load(ctx))
	assert.Equal(t, []string{"Bhera Bypass", "Canal Rehabilitation"}, view.Names())

	// later filtering leaves the dropdown options alone
	view.SetSearchText(ctx, "Canal")
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{"Bhera Bypass", "Canal Rehabilitation"}, view.Names())
	assert.Len(t, lister.callsSnapshot(), 2)
}

func TestSchemeCreatedClearsFiltersAndRefetchesImmediately(t *testing.T) {
	view, lister := newTestView(map[string][]gateway.Scheme{
		"": {{GsNo: 1, NameOfScheme: "New Scheme"}},
	})
	ctx := context.Background()

	// a pending debounced refetch is outrun by the create
	view.SetSearchText(ctx, "old filter")
	view.SchemeCreated(ctx)

	calls := lister.callsSnapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, "", calls[0])

	// the cancelled timer never fires
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, lister.callsSnapshot(), 1)
}
