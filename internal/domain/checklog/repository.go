package checklog

import "context"

type CheckLogRepository interface {
	// List returns joined rows scoped to one organization, newest first,
	// plus the total count for the same filter.
	List(ctx context.Context, organizationID string, filter ListFilter) ([]CheckLog, int, error)
	Create(ctx context.Context, newLog CheckLog) (CheckLog, error)
	TodayStats(ctx context.Context, organizationID string) (TodayStatsResponse, error)
	// LastLogPerEmployeeForDay returns each active employee's latest log of
	// the given UTC day, for organizations with auto close enabled.
	LastLogPerEmployeeForDay(ctx context.Context, organizationID string, date string) ([]CheckLog, error)
}
