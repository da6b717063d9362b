package contact

import "context"

// Store is append-only: submissions can be created, never read back,
// changed or removed through this contract.
type Store interface {
	Create(ctx context.Context, in Input) (*Submission, error)
}
