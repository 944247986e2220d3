package datasources

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ActiveUserIDsLister lists the IDs of active users whose last login is at
// or after activeSince.
type ActiveUserIDsLister interface {
	ListActiveUserIDs(ctx context.Context, activeSince time.Time) ([]uuid.UUID, error)
}
