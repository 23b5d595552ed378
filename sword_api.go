package dataverse

import (
	"context"
	"fmt"

	"github.com/dans-knaw/go-dataverse/transport"
)

// swordPrefix is the path prefix of the SWORD v2 deposit protocol.
const swordPrefix = "dvn/api/data-deposit/v1.1/swordv2"

// SwordAPI wraps the SWORD deposit protocol family. This is the one legacy
// family that authenticates with basic auth (API key as username, empty
// password) instead of the X-Dataverse-key header, and its responses are
// Atom XML rather than the JSON status envelope, so calls return the raw
// transport response.
type SwordAPI struct {
	c *Client
}

// swordOpts routes a request through the SWORD prefix with basic auth.
func (a *SwordAPI) opts(extra ...transport.Option) []transport.Option {
	return append([]transport.Option{
		transport.WithPrefix(swordPrefix),
		transport.Unversioned(),
		transport.ViaBasicAuth(),
	}, extra...)
}

// ServiceDocument fetches the SWORD service document describing the
// collections the caller may deposit into.
func (a *SwordAPI) ServiceDocument(ctx context.Context) (*transport.Response, error) {
	return a.c.t.Get(ctx, "service-document", a.opts()...)
}

// Statement fetches the SWORD statement of a dataset, listing its files.
func (a *SwordAPI) Statement(ctx context.Context, doi string) (*transport.Response, error) {
	return a.c.t.Get(ctx, fmt.Sprintf("statement/study/%s", doi), a.opts()...)
}

// DeleteFile deletes a file by its database id via the edit-media IRI.
func (a *SwordAPI) DeleteFile(ctx context.Context, databaseID int64) (*transport.Response, error) {
	return a.c.t.Delete(ctx, fmt.Sprintf("edit-media/file/%d", databaseID), a.opts()...)
}
