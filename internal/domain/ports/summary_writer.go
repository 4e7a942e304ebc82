package ports

import (
	"context"

	"gchat-cardbot/internal/domain/model"
)

// SummaryWriter synthesizes a short narrative from check results for the
// digest card's summary section.
type SummaryWriter interface {
	Compose(ctx context.Context, results []model.CheckResult) (string, error)
}
