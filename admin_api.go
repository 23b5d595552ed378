package dataverse

import (
	"context"
	"fmt"

	"github.com/dans-knaw/go-dataverse/models"
	"github.com/dans-knaw/go-dataverse/transport"
)

// AdminAPI wraps the admin endpoint family. Admin paths carry no version
// segment, and when an unblock key is configured it is sent as a query
// parameter so the calls work from non-trusted origins.
type AdminAPI struct {
	c *Client
}

// adminOpts marks a request as unversioned admin traffic.
func (a *AdminAPI) opts(extra ...transport.Option) []transport.Option {
	return append([]transport.Option{transport.Unversioned(), transport.WithUnblockKey()}, extra...)
}

// GetDatabaseSetting reads a database setting (e.g.
// ":MaxEmbargoDurationInMonths"). The value arrives in data as a one-field
// message object.
func (a *AdminAPI) GetDatabaseSetting(ctx context.Context, name string) (*Response[models.DataMessage], error) {
	return get[models.DataMessage](ctx, a.c, fmt.Sprintf("admin/settings/%s", name), a.opts()...)
}

// PutDatabaseSetting writes a database setting. Confirmation arrives in
// data as a one-field message object.
func (a *AdminAPI) PutDatabaseSetting(ctx context.Context, name, value string) (*Response[models.DataMessage], error) {
	return putText[models.DataMessage](ctx, a.c, fmt.Sprintf("admin/settings/%s", name), value, a.opts()...)
}

// DeleteDatabaseSetting removes a database setting. Confirmation arrives
// in the envelope's message field.
func (a *AdminAPI) DeleteDatabaseSetting(ctx context.Context, name string) (*Response[models.DataMessage], error) {
	return del[models.DataMessage](ctx, a.c, fmt.Sprintf("admin/settings/%s", name), a.opts()...)
}

// ListAuthenticatedUser fetches one user account by identifier. Result
// arrives in data.
func (a *AdminAPI) ListAuthenticatedUser(ctx context.Context, identifier string) (*Response[models.AuthenticatedUser], error) {
	return get[models.AuthenticatedUser](ctx, a.c, fmt.Sprintf("admin/authenticatedUsers/%s", identifier), a.opts()...)
}
