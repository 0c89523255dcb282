// Package listview presents the scheme collection with search-as-you-type
// filtering, refetching after a quiet period instead of on every keystroke.
package listview

import (
	"context"
	"sync"
	"time"

	"schememonitor/internal/dashboard/gateway"
	"schememonitor/internal/dashboard/toast"
)

// DefaultDebounce is the quiet period after the last filter change before a
// refetch fires.
const DefaultDebounce = 300 * time.Millisecond

// SchemeLister is the slice of the REST client the view-model needs.
type SchemeLister interface {
	ListSchemes(ctx context.Context, name string) ([]gateway.Scheme, error)
}

type View struct {
	mu       sync.Mutex
	lister   SchemeLister
	notifier toast.Notifier
	debounce time.Duration
	timer    *time.Timer

	names      []string
	searchText string
	filterName string
	schemes    []gateway.Scheme
	loading    bool
}

// New builds the view-model. debounce <= 0 selects DefaultDebounce; tests
// pass a short period.
func New(lister SchemeLister, notifier toast.Notifier, debounce time.Duration) *View {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &View{lister: lister, notifier: notifier, debounce: debounce}
}

// Load performs the initial unfiltered fetch and captures the dropdown name
// list. The names are fetched once and stay fixed through later filtering.
func (v *View) Load(ctx context.Context) error {
	schemes, err := v.lister.ListSchemes(ctx, "")
	if err != nil {
		v.notifier.Error("Failed to load schemes")
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.schemes = schemes
	v.names = v.names[:0]
	seen := map[string]bool{}
	for _, s := range schemes {
		if !seen[s.NameOfScheme] {
			seen[s.NameOfScheme] = true
			v.names = append(v.names, s.NameOfScheme)
		}
	}

	return nil
}

// SetSearchText updates the free-text filter and schedules a debounced
// refetch.
func (v *View) SetSearchText(ctx context.Context, text string) {
	v.mu.Lock()
	v.searchText = text
	v.mu.Unlock()
	v.scheduleRefetch(ctx)
}

// SetFilterName updates the dropdown filter and schedules a debounced
// refetch.
func (v *View) SetFilterName(ctx context.Context, name string) {
	v.mu.Lock()
	v.filterName = name
	v.mu.Unlock()
	v.scheduleRefetch(ctx)
}

// activeFilter resolves the single server-side name parameter. The dropdown
// value supersedes the text filter when both are set.
func (v *View) activeFilter() string {
	name := v.searchText
	if v.filterName != "" {
		name = v.filterName
	}
	return name
}

// scheduleRefetch restarts the quiet-period timer; only the last change
// before the period elapses triggers a fetch. In-flight fetches are not
// cancelled, so a slow earlier response can still land after a fresher one.
func (v *View) scheduleRefetch(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.timer != nil {
		v.timer.Stop()
	}
	v.timer = time.AfterFunc(v.debounce, func() {
		v.refetch(ctx)
	})
}

func (v *View) refetch(ctx context.Context) {
	v.mu.Lock()
	name := v.activeFilter()
	v.loading = true
	v.mu.Unlock()

	schemes, err := v.lister.ListSchemes(ctx, name)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.notifier.Error("Failed to load schemes")
		return
	}
	v.schemes = schemes
}

// SchemeCreated clears both filters and refetches immediately, bypassing the
// debounce. Called after a new scheme is created so it shows up regardless
// of the filters in effect.
func (v *View) SchemeCreated(ctx context.Context) {
	v.mu.Lock()
	v.searchText = ""
	v.filterName = ""
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	v.mu.Unlock()

	v.refetch(ctx)
}

func (v *View) Schemes() []gateway.Scheme {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]gateway.Scheme, len(v.schemes))
	copy(out, v.schemes)
	return out
}

func (v *View) Names() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

func (v *View) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}
