package dataverse

import (
	"context"
	"fmt"
	"time"

	"github.com/dans-knaw/go-dataverse/models"
	"github.com/dans-knaw/go-dataverse/transport"
)

// DatasetAPI wraps the endpoints of one dataset. The Identifier fixes the
// addressing mode (database id or persistent identifier) for the lifetime
// of the accessor.
type DatasetAPI struct {
	c  *Client
	id Identifier
}

// View fetches the dataset with its latest version visible to the caller.
// Result arrives in data.
func (a *DatasetAPI) View(ctx context.Context) (*Response[models.Dataset], error) {
	return get[models.Dataset](ctx, a.c, a.path(""), a.id.options()...)
}

// ListVersions lists all versions of the dataset. Result arrives in data.
func (a *DatasetAPI) ListVersions(ctx context.Context) (*Response[[]models.DatasetVersion], error) {
	return get[[]models.DatasetVersion](ctx, a.c, a.path("versions"), a.id.options()...)
}

// UpdateMetadata replaces the draft version's metadata. Result arrives in
// data. A published dataset under ingest may be locked; the transport
// retries that transparently.
func (a *DatasetAPI) UpdateMetadata(ctx context.Context, version models.DatasetVersion) (*Response[models.DatasetVersion], error) {
	return putJSON[models.DatasetVersion](ctx, a.c, a.path("versions/:draft"), version, a.id.options()...)
}

// Publish publishes the draft version; major selects a major version bump,
// otherwise minor. Result arrives in data.
func (a *DatasetAPI) Publish(ctx context.Context, major bool) (*Response[models.Dataset], error) {
	releaseType := "minor"
	if major {
		releaseType = "major"
	}
	opts := append(a.id.options(), transport.WithQueryParam("type", releaseType))
	return postJSON[models.Dataset](ctx, a.c, a.path("actions/:publish"), nil, opts...)
}

// DeleteDraft deletes the draft version. Confirmation arrives in the
// envelope's message field, not in data.
func (a *DatasetAPI) DeleteDraft(ctx context.Context) (*Response[models.DataMessage], error) {
	return del[models.DataMessage](ctx, a.c, a.path("versions/:draft"), a.id.options()...)
}

// AddFile uploads a file and/or its metadata to the dataset. file may be
// nil for a metadata-only call and meta may be nil for a bare upload, not
// both. The affected files arrive in data.
func (a *DatasetAPI) AddFile(ctx context.Context, file *transport.FileField, meta *models.FileMeta) (*Response[models.FileList], error) {
	var jsonData any
	if meta != nil {
		jsonData = meta
	}
	return postMultipart[models.FileList](ctx, a.c, a.path("add"), file, jsonData, a.id.options()...)
}

// Locks lists the locks currently held on the dataset. Result arrives in
// data; an empty list means the dataset is free.
func (a *DatasetAPI) Locks(ctx context.Context) (*Response[[]models.Lock], error) {
	return get[[]models.Lock](ctx, a.c, a.path("locks"), a.id.options()...)
}

// AwaitUnlock polls the dataset's locks until they clear, using the
// configured locked-retry count and interval as the polling budget. It
// returns nil as soon as no locks remain.
func (a *DatasetAPI) AwaitUnlock(ctx context.Context) error {
	interval := a.c.cfg.LockedRetryInterval
	for attempt := 0; ; attempt++ {
		resp, err := a.Locks(ctx)
		if err != nil {
			return err
		}
		locks, err := resp.Data()
		if err != nil {
			return err
		}
		if len(locks) == 0 {
			return nil
		}
		if attempt >= a.c.cfg.LockedRetryCount {
			return fmt.Errorf("dataverse: dataset %s still locked after %d checks (%s)",
				a.id, attempt+1, locks[0].LockType)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

func (a *DatasetAPI) path(action string) string {
	if action == "" {
		return fmt.Sprintf("datasets/%s", a.id.segment())
	}
	return fmt.Sprintf("datasets/%s/%s", a.id.segment(), action)
}
