package dataverse

import (
	"strconv"

	"github.com/dans-knaw/go-dataverse/transport"
)

// persistentIDToken is the path placeholder the API expects when a resource
// is addressed by persistent identifier.
const persistentIDToken = ":persistentId"

// Identifier addresses a dataset or file either by its internal database id
// or by its persistent identifier (e.g. a DOI). The two addressing modes
// produce different URL forms; holding them in one tagged value makes path
// construction total and rules out a "persistent flag without an id" state.
type Identifier struct {
	numeric    int64
	pid        string
	persistent bool
}

// ID addresses a resource by its database id.
func ID(id int64) Identifier {
	return Identifier{numeric: id}
}

// PID addresses a resource by its persistent identifier.
func PID(pid string) Identifier {
	return Identifier{pid: pid, persistent: true}
}

// IsPersistent reports whether the identifier is a persistent identifier.
func (i Identifier) IsPersistent() bool {
	return i.persistent
}

// String returns the identifier in display form.
func (i Identifier) String() string {
	if i.persistent {
		return i.pid
	}
	return strconv.FormatInt(i.numeric, 10)
}

// segment returns the path segment for the identifier: the literal id, or
// the :persistentId token whose value travels as a query parameter.
func (i Identifier) segment() string {
	if i.persistent {
		return persistentIDToken
	}
	return strconv.FormatInt(i.numeric, 10)
}

// options returns the transport options the addressing mode requires.
func (i Identifier) options() []transport.Option {
	if i.persistent {
		return []transport.Option{transport.WithQueryParam("persistentId", i.pid)}
	}
	return nil
}
