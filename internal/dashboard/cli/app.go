// Package cli is the terminal shell over the dashboard core: it routes
// commands to the gateway, the list view-model, the staging pipeline and the
// edit session, and renders plain-text tables.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"schememonitor/internal/dashboard/gateway"
	"schememonitor/internal/dashboard/listview"
	"schememonitor/internal/dashboard/session"
	"schememonitor/internal/dashboard/staging"
	"schememonitor/internal/dashboard/toast"
)

type App struct {
	client   *gateway.Client
	view     *listview.View
	notifier toast.Notifier

	// current selection and, while editing, the active drafts
	scheme     *gateway.Scheme
	components []gateway.Component
	session    *session.Session
	drafts     map[gateway.Bucket]*staging.Draft
}

func NewApp(client *gateway.Client, notifier toast.Notifier) *App {
	return &App{
		client:   client,
		view:     listview.New(client, notifier, 0),
		notifier: notifier,
	}
}

func (a *App) Load(ctx context.Context) error {
	return a.view.Load(ctx)
}

func (a *App) List(ctx context.Context) {
	a.printSchemes(a.view.Schemes())
}

// Search feeds the free-text filter and waits out the quiet period so the
// refreshed list can be printed.
func (a *App) Search(ctx context.Context, text string) {
	a.view.SetSearchText(ctx, text)
	time.Sleep(listview.DefaultDebounce + 100*time.Millisecond)
	a.printSchemes(a.view.Schemes())
}

func (a *App) Filter(ctx context.Context, name string) {
	a.view.SetFilterName(ctx, name)
	time.Sleep(listview.DefaultDebounce + 100*time.Millisecond)
	a.printSchemes(a.view.Schemes())
}

func (a *App) printSchemes(schemes []gateway.Scheme) {
	if len(schemes) == 0 {
		printlnFn("No schemes found")
		return
	}
	for _, s := range schemes {
		printlnFn(fmt.Sprintf("%6d  %-50s  %6.1f%%  alloc %.2fM", s.GsNo, s.NameOfScheme, s.PhysicalProgress, s.TotalAllocation))
	}
}

// Open fetches one scheme and its components and makes it the current
// selection.
func (a *App) Open(ctx context.Context, gsNoArg string) error {
	gsNo, err := strconv.Atoi(gsNoArg)
	if err != nil {
		return fmt.Errorf("gs_no must be an integer")
	}

	scheme, err := a.client.GetScheme(ctx, gsNo)
	if err != nil {
		a.notifier.Error("Failed to load scheme")
		return err
	}
	components, err := a.client.ListComponents(ctx, gsNo)
	if err != nil {
		a.notifier.Error("Failed to load components")
		return err
	}

	a.scheme = scheme
	a.components = components
	a.session = nil

	printlnFn(fmt.Sprintf("GS No. %d  %s", scheme.GsNo, scheme.NameOfScheme))
	printlnFn(fmt.Sprintf("  progress %.1f%%  allocation %.2fM  released %.2fM  utilization %.2fM  labour %d",
		scheme.PhysicalProgress, scheme.TotalAllocation, scheme.FundsReleased, scheme.CommittedFundUtilization, scheme.LabourDeployed))
	if scheme.Remarks != "" {
		printlnFn("  remarks: " + scheme.Remarks)
	}
	for i, c := range components {
		printlnFn(fmt.Sprintf("  [%d] #%d %-40s  %-12s  before:%d after:%d  active:%v",
			i, c.CompID, c.ComponentName, c.StartingDate, len(c.BeforeImages), len(c.AfterImages), c.IsActive))
	}

	return nil
}

// Edit begins an edit session over the current selection.
func (a *App) Edit() error {
	if a.scheme == nil {
		return fmt.Errorf("open a scheme first")
	}
	a.session = session.Begin(a.client, *a.scheme, a.components)
	printlnFn("Editing. Use: set <field> <value> | setcomp <i> name|date <value> | commit | cancel")
	return nil
}

// Set writes one scalar field of the scheme draft.
func (a *App) Set(field, value string) error {
	if a.session == nil {
		return fmt.Errorf("not editing")
	}

	draft := a.session.Scheme()
	switch field {
	case "name":
		draft.NameOfScheme = value
	case "progress":
		return parseFloatInto(value, &draft.PhysicalProgress)
	case "allocation":
		return parseFloatInto(value, &draft.TotalAllocation)
	case "released":
		return parseFloatInto(value, &draft.FundsReleased)
	case "utilization":
		return parseFloatInto(value, &draft.CommittedFundUtilization)
	case "labour":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("labour must be an integer")
		}
		draft.LabourDeployed = n
	case "remarks":
		draft.Remarks = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}

	return nil
}

// SetComp writes one field of one component draft, addressed by index.
func (a *App) SetComp(indexArg, field, value string) error {
	if a.session == nil {
		return fmt.Errorf("not editing")
	}

	index, err := strconv.Atoi(indexArg)
	if err != nil {
		return fmt.Errorf("component index must be an integer")
	}
	draft := a.session.Component(index)
	if draft == nil {
		return fmt.Errorf("no component at index %d", index)
	}

	switch field {
	case "name":
		draft.ComponentName = value
	case "date":
		draft.StartingDate = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}

	return nil
}

func (a *App) Commit(ctx context.Context) error {
	if a.session == nil {
		return fmt.Errorf("not editing")
	}

	scheme, components, err := a.session.Commit(ctx)
	if scheme != nil {
		a.scheme = scheme
	}
	if components != nil {
		a.components = components
	}
	a.session = nil

	if err != nil {
		a.notifier.Error("Failed to save changes")
		return err
	}

	a.notifier.Success("Changes saved")
	return nil
}

func (a *App) Cancel() {
	if a.session != nil {
		a.session.Cancel()
		a.session = nil
	}
	printlnFn("Edit cancelled")
}

// Stage uploads local files into the create-time draft for the given
// bucket. Each bucket keeps its own draft so before and after photographs
// can be staged side by side.
func (a *App) Stage(ctx context.Context, bucketArg string, paths []string) error {
	bucket := gateway.Bucket(bucketArg)
	if bucket != gateway.BucketBefore && bucket != gateway.BucketAfter {
		return fmt.Errorf("bucket must be before or after")
	}

	if a.drafts == nil {
		a.drafts = map[gateway.Bucket]*staging.Draft{}
	}
	draft, ok := a.drafts[bucket]
	if !ok {
		draft = staging.NewDraft(bucket, a.client, a.notifier)
		a.drafts[bucket] = draft
	}

	files := make([]staging.File, 0, len(paths))
	handles := make([]*os.File, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			a.notifier.Error(fmt.Sprintf("Failed to open %s", path))
			continue
		}
		handles = append(handles, f)
		files = append(files, staging.File{Name: filepath.Base(path), Reader: f})
	}

	failures := draft.Add(ctx, files)
	for _, f := range handles {
		f.Close()
	}

	printlnFn(fmt.Sprintf("Staged %d %s file(s), %d failure(s)", len(draft.Filenames()), bucket, failures))
	return nil
}

func (a *App) Unstage(bucketArg, indexArg string) error {
	bucket := gateway.Bucket(bucketArg)
	draft := a.drafts[bucket]
	if draft == nil {
		return fmt.Errorf("nothing staged for %s", bucketArg)
	}
	index, err := strconv.Atoi(indexArg)
	if err != nil {
		return fmt.Errorf("index must be an integer")
	}
	if !draft.Remove(index) {
		return fmt.Errorf("no staged %s image at index %d", bucket, index)
	}
	printlnFn(fmt.Sprintf("Staged %s files: %v", bucket, draft.Filenames()))
	return nil
}

// AddComponent creates a component on the current scheme, attaching the
// staged filenames of each bucket to the matching image list.
func (a *App) AddComponent(ctx context.Context, name, date string) error {
	if a.scheme == nil {
		return fmt.Errorf("open a scheme first")
	}

	component := gateway.Component{
		ComponentName: name,
		StartingDate:  date,
		GsNo:          a.scheme.GsNo,
		IsActive:      true,
	}
	if draft := a.drafts[gateway.BucketBefore]; draft != nil {
		component.BeforeImages = draft.Filenames()
	}
	if draft := a.drafts[gateway.BucketAfter]; draft != nil {
		component.AfterImages = draft.Filenames()
	}

	compID, err := a.client.CreateComponent(ctx, component)
	if err != nil {
		a.notifier.Error("Failed to create component")
		return err
	}

	a.drafts = nil
	a.notifier.Success(fmt.Sprintf("Component %d created", compID))
	return a.Open(ctx, strconv.Itoa(a.scheme.GsNo))
}

func (a *App) Reports(ctx context.Context) error {
	reports, err := a.client.ListReports(ctx)
	if err != nil {
		a.notifier.Error("Failed to fetch reports")
		return err
	}
	for _, r := range reports {
		printlnFn(fmt.Sprintf("%-12s  %-10s  %-40s  by %s", r.ReportNumber, r.Date, r.ProjectName, r.CreatedBy))
	}
	return nil
}

func (a *App) Project(ctx context.Context, gsNo string) error {
	rows, err := a.client.GetExternalProject(ctx, gsNo)
	if err != nil {
		a.notifier.Error("Failed to fetch project")
		return err
	}
	for _, p := range rows {
		printlnFn(fmt.Sprintf("%-8s  %-40s  %-14s  est %.2fM  alloc %.2fM  util %.1f%%",
			p.GsNo, p.Name, p.District, p.EstimatedCost, p.Allocation, p.UtilicationPercent))
	}
	return nil
}

func (a *App) PDF() {
	printlnFn("Report download: " + a.client.ReportPDFURL())
}

func parseFloatInto(value string, target *float64) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("value must be numeric")
	}
	*target = f
	return nil
}
