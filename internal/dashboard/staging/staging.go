// Package staging uploads batches of locally selected photographs and keeps
// the resulting stored filenames lined up with local previews.
//
// Two modes exist and stay distinct: a Draft accumulates filenames locally
// for a component that has not been created yet, while an Editor persists
// every image change of an existing component immediately through a partial
// update carrying the full current lists.
package staging

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"schememonitor/internal/dashboard/gateway"
	"schememonitor/internal/dashboard/toast"
)

// Uploader is the staging endpoint surface.
type Uploader interface {
	Upload(ctx context.Context, bucket gateway.Bucket, filename string, file io.Reader) (string, error)
}

// ComponentUpdater persists image list changes of an existing component.
type ComponentUpdater interface {
	UpdateComponent(ctx context.Context, compID int, update gateway.ComponentUpdate) error
}

// File is one locally selected file handle.
type File struct {
	Name   string
	Reader io.Reader
}

// Preview is a memory-backed copy of an uploaded file, displayable before
// and independent of anything the server stores.
type Preview struct {
	Name string
	Data []byte
}

// Draft stages images for a component that does not exist yet. Filenames
// and previews are parallel lists; nothing reaches the component record
// until the component is created with Filenames attached.
type Draft struct {
	bucket    gateway.Bucket
	uploader  Uploader
	notifier  toast.Notifier
	filenames []string
	previews  []Preview
}

func NewDraft(bucket gateway.Bucket, uploader Uploader, notifier toast.Notifier) *Draft {
	return &Draft{bucket: bucket, uploader: uploader, notifier: notifier}
}

// Add uploads the batch one file at a time in input order. A failed file is
// reported and skipped; the rest of the batch continues. The number of
// failures is returned.
func (d *Draft) Add(ctx context.Context, files []File) int {
	failures := 0
	for _, file := range files {
		data, err := io.ReadAll(file.Reader)
		if err != nil {
			failures++
			d.notifier.Error(fmt.Sprintf("Failed to upload %s", file.Name))
			continue
		}

		stored, err := d.uploader.Upload(ctx, d.bucket, file.Name, bytes.NewReader(data))
		if err != nil {
			failures++
			d.notifier.Error(fmt.Sprintf("Failed to upload %s", file.Name))
			continue
		}

		d.filenames = append(d.filenames, stored)
		d.previews = append(d.previews, Preview{Name: file.Name, Data: data})
	}

	return failures
}

// Remove drops the image at index from both parallel lists. The stored blob
// is left in place.
func (d *Draft) Remove(index int) bool {
	if index < 0 || index >= len(d.filenames) {
		return false
	}

	d.filenames = append(d.filenames[:index], d.filenames[index+1:]...)
	d.previews = append(d.previews[:index], d.previews[index+1:]...)
	return true
}

func (d *Draft) Filenames() []string {
	out := make([]string, len(d.filenames))
	copy(out, d.filenames)
	return out
}

func (d *Draft) Previews() []Preview {
	out := make([]Preview, len(d.previews))
	copy(out, d.previews)
	return out
}

// Editor changes the images of an existing component. Each add or remove is
// persisted immediately with the full current lists; there is no pending
// local state.
type Editor struct {
	compID   int
	uploader Uploader
	updater  ComponentUpdater
	notifier toast.Notifier
	before   []string
	after    []string
}

func NewEditor(compID int, before, after []string, uploader Uploader, updater ComponentUpdater, notifier toast.Notifier) *Editor {
	e := &Editor{
		compID:   compID,
		uploader: uploader,
		updater:  updater,
		notifier: notifier,
		before:   make([]string, len(before)),
		after:    make([]string, len(after)),
	}
	copy(e.before, before)
	copy(e.after, after)
	return e
}

func (e *Editor) list(bucket gateway.Bucket) *[]string {
	if bucket == gateway.BucketAfter {
		return &e.after
	}
	return &e.before
}

// AddImages uploads the batch like Draft.Add, then persists the grown list.
// The failure count covers uploads only; a failed persist is reported and
// rolls the local list back.
func (e *Editor) AddImages(ctx context.Context, bucket gateway.Bucket, files []File) int {
	list := e.list(bucket)
	previous := make([]string, len(*list))
	copy(previous, *list)

	failures := 0
	for _, file := range files {
		data, err := io.ReadAll(file.Reader)
		if err != nil {
			failures++
			e.notifier.Error(fmt.Sprintf("Failed to upload %s", file.Name))
			continue
		}

		stored, err := e.uploader.Upload(ctx, bucket, file.Name, bytes.NewReader(data))
		if err != nil {
			failures++
			e.notifier.Error(fmt.Sprintf("Failed to upload %s", file.Name))
			continue
		}

		*list = append(*list, stored)
	}

	if err := e.persist(ctx); err != nil {
		*list = previous
		e.notifier.Error("Failed to save component images")
	}

	return failures
}

// RemoveImage drops the image at index and persists the shrunk list. The
// local list rolls back if the persist fails.
func (e *Editor) RemoveImage(ctx context.Context, bucket gateway.Bucket, index int) bool {
	list := e.list(bucket)
	if index < 0 || index >= len(*list) {
		return false
	}

	previous := make([]string, len(*list))
	copy(previous, *list)

	*list = append((*list)[:index], (*list)[index+1:]...)

	if err := e.persist(ctx); err != nil {
		*list = previous
		e.notifier.Error("Failed to save component images")
		return false
	}

	return true
}

func (e *Editor) persist(ctx context.Context) error {
	before := make([]string, len(e.before))
	copy(before, e.before)
	after := make([]string, len(e.after))
	copy(after, e.after)

	return e.updater.UpdateComponent(ctx, e.compID, gateway.ComponentUpdate{
		BeforeImages: &before,
		AfterImages:  &after,
	})
}

func (e *Editor) BeforeImages() []string {
	out := make([]string, len(e.before))
	copy(out, e.before)
	return out
}

func (e *Editor) AfterImages() []string {
	out := make([]string, len(e.after))
	copy(out, e.after)
	return out
}
