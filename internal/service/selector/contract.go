//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=selector_test
package selector

import (
	"context"
	"time"

	"orchestrator/internal/entities"
)

type CandidateRepository interface {
	FindCandidates(ctx context.Context, shipmentTypeID int64, origin, destination string, since time.Time) ([]entities.CourierCandidate, error)
}
