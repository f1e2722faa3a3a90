package performance

import "context"

type PerformanceRepository interface {
	Create(ctx context.Context, review Review) (Review, error)

	// List retrieves reviews matching the filter, newest first.
	List(ctx context.Context, filter ReviewFilter) ([]Review, error)
}
