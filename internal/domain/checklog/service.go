package checklog

import "context"

type CheckLogService interface {
	List(ctx context.Context, userID, organizationID string, filter ListFilter) (ListCheckLogsResponse, error)
	TodayStats(ctx context.Context, userID, organizationID string) (TodayStatsResponse, error)
	// Record appends a log and publishes it to the organization's SSE
	// subscribers. Callers are the scan service and the auto close job.
	Record(ctx context.Context, organizationID string, newLog CheckLog) (CheckLogResponse, error)
}
