package bills

import "context"

// Repo defines persistence operations for bill records. The store is
// append-only from the API's perspective; records never reference each other.
type Repo interface {
	Insert(ctx context.Context, rec *Record) error
	ListAll(ctx context.Context) ([]*Record, error)
}
