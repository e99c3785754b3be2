package contracts

import (
	"context"

	"github.com/light-bringer/backoffice-service/internal/pkg/committer"
)

// Committer applies a commit plan atomically. It is an interface so the
// all-or-nothing failure paths can be exercised with a failing fake.
type Committer interface {
	Apply(ctx context.Context, plan *committer.CommitPlan) error
}
