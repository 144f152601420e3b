//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=activity_gauges_test
package activity_gauges

import "context"

type ShiftCounter interface {
	CountActive(ctx context.Context) (int64, error)
}

type DeliveryCounter interface {
	CountOngoing(ctx context.Context) (int64, error)
}
