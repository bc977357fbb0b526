//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test
package healthcheck_head

import "context"

// Dependency хранилище, без которого реплика не готова принимать трафик (postgres, redis).
type Dependency interface {
	Ping(ctx context.Context) error
}
