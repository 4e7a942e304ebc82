package ports

import (
	"context"

	"gchat-cardbot/internal/domain/model"
)

// StatusProvider probes service targets for the status digest.
type StatusProvider interface {
	CheckTargets(ctx context.Context, targets []model.Target) ([]model.CheckResult, error)
}
