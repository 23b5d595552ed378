package dataverse

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dans-knaw/go-dataverse/models"
	"github.com/dans-knaw/go-dataverse/transport"
)

// FileAPI wraps the endpoints of one file.
type FileAPI struct {
	c  *Client
	id Identifier
}

// Restrict restricts or unrestricts the file. Confirmation arrives in the
// envelope's message field. The owning dataset may be locked right after
// ingest; the transport retries that transparently.
func (a *FileAPI) Restrict(ctx context.Context, restrict bool) (*Response[models.DataMessage], error) {
	return putText[models.DataMessage](ctx, a.c, a.path("restrict"),
		strconv.FormatBool(restrict), a.id.options()...)
}

// Replace replaces the file's content and/or metadata, keeping its ids.
// The affected files arrive in data.
func (a *FileAPI) Replace(ctx context.Context, file *transport.FileField, meta *models.FileMeta) (*Response[models.FileList], error) {
	var jsonData any
	if meta != nil {
		jsonData = meta
	}
	return postMultipart[models.FileList](ctx, a.c, a.path("replace"), file, jsonData, a.id.options()...)
}

// Metadata fetches the file's metadata in its draft version. Result
// arrives in data.
func (a *FileAPI) Metadata(ctx context.Context) (*Response[models.FileMeta], error) {
	return get[models.FileMeta](ctx, a.c, a.path("metadata"), a.id.options()...)
}

func (a *FileAPI) path(action string) string {
	return fmt.Sprintf("files/%s/%s", a.id.segment(), action)
}
