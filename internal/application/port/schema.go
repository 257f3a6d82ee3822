package port

import (
	"context"
	"errors"
)

// ErrSchemaFetch wraps every failure to obtain the navigation document.
var ErrSchemaFetch = errors.New("schema fetch failed")

// SchemaSource yields the raw navigation document, already parsed into
// generic values (maps, slices, strings, numbers, bools).
type SchemaSource interface {
	Fetch(ctx context.Context) (any, error)
}
