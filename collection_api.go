package dataverse

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dans-knaw/go-dataverse/models"
)

// CollectionAPI wraps the endpoints of one dataverse collection, addressed
// by alias or database id.
type CollectionAPI struct {
	c     *Client
	alias string
}

// View fetches the collection. Result arrives in data.
func (a *CollectionAPI) View(ctx context.Context) (*Response[models.Dataverse], error) {
	return get[models.Dataverse](ctx, a.c, a.path(""))
}

// Create creates a sub-collection under this collection. Result arrives in
// data.
func (a *CollectionAPI) Create(ctx context.Context, dv models.Dataverse) (*Response[models.Dataverse], error) {
	return postJSON[models.Dataverse](ctx, a.c, a.path(""), dv)
}

// Delete deletes the collection. Confirmation text arrives in data as a
// one-field message object.
func (a *CollectionAPI) Delete(ctx context.Context) (*Response[models.DataMessage], error) {
	return del[models.DataMessage](ctx, a.c, a.path(""))
}

// Contents lists the collections and datasets directly under this
// collection. Result arrives in data.
func (a *CollectionAPI) Contents(ctx context.Context) (*Response[[]models.DataverseItem], error) {
	return get[[]models.DataverseItem](ctx, a.c, a.path("contents"))
}

// Publish publishes the collection. Result arrives in data.
func (a *CollectionAPI) Publish(ctx context.Context) (*Response[models.Dataverse], error) {
	return postJSON[models.Dataverse](ctx, a.c, a.path("actions/:publish"), nil)
}

// CreateDataset creates a dataset in this collection from a dataset
// version payload. The new ids arrive in data.
func (a *CollectionAPI) CreateDataset(ctx context.Context, dataset map[string]any) (*Response[models.DatasetCreated], error) {
	return postJSON[models.DatasetCreated](ctx, a.c, a.path("datasets"), dataset)
}

// CreateDatasetFromJSON creates a dataset from pre-serialized dataset
// JSON, for callers that keep dataset metadata as documents on disk. The
// bytes are sent verbatim.
func (a *CollectionAPI) CreateDatasetFromJSON(ctx context.Context, datasetJSON []byte) (*Response[models.DatasetCreated], error) {
	return postJSON[models.DatasetCreated](ctx, a.c, a.path("datasets"), json.RawMessage(datasetJSON))
}

func (a *CollectionAPI) path(action string) string {
	if action == "" {
		return fmt.Sprintf("dataverses/%s", a.alias)
	}
	return fmt.Sprintf("dataverses/%s/%s", a.alias, action)
}
