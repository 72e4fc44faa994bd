package checklog

import (
	"context"
	"fmt"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/checklog"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/organization"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/sse"
	"github.com/jackc/pgx/v5"
)

type CheckLogServiceImpl struct {
	checklog.CheckLogRepository
	organization.OrganizationRepository
	hub *sse.Hub
}

func NewCheckLogService(checkLogRepository checklog.CheckLogRepository, organizationRepository organization.OrganizationRepository, hub *sse.Hub) checklog.CheckLogService {
	return &CheckLogServiceImpl{
		CheckLogRepository:     checkLogRepository,
		OrganizationRepository: organizationRepository,
		hub:                    hub,
	}
}

func (c *CheckLogServiceImpl) guardOrganization(ctx context.Context, userID, organizationID string) error {
	org, err := c.OrganizationRepository.GetByID(ctx, organizationID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}
	if !org.IsOwnedBy(userID) {
		return checklog.ErrNotOwner
	}
	return nil
}

// List implements checklog.CheckLogService.
func (c *CheckLogServiceImpl) List(ctx context.Context, userID, organizationID string, filter checklog.ListFilter) (checklog.ListCheckLogsResponse, error) {
	if err := filter.Validate(); err != nil {
		return checklog.ListCheckLogsResponse{}, err
	}
	filter.Normalize()

	if err := c.guardOrganization(ctx, userID, organizationID); err != nil {
		return checklog.ListCheckLogsResponse{}, err
	}

	logs, total, err := c.CheckLogRepository.List(ctx, organizationID, filter)
	if err != nil {
		return checklog.ListCheckLogsResponse{}, fmt.Errorf("failed to list check logs: %w", err)
	}

	return checklog.ListCheckLogsResponse{
		Logs:  checklog.ToResponses(logs),
		Total: total,
	}, nil
}

// TodayStats implements checklog.CheckLogService.
func (c *CheckLogServiceImpl) TodayStats(ctx context.Context, userID, organizationID string) (checklog.TodayStatsResponse, error) {
	if err := c.guardOrganization(ctx, userID, organizationID); err != nil {
		return checklog.TodayStatsResponse{}, err
	}

	stats, err := c.CheckLogRepository.TodayStats(ctx, organizationID)
	if err != nil {
		return checklog.TodayStatsResponse{}, fmt.Errorf("failed to get today stats: %w", err)
	}

	return stats, nil
}

// Record implements checklog.CheckLogService. The inserted row is pushed to
// the organization's SSE subscribers; a slow or absent dashboard never
// fails the write.
func (c *CheckLogServiceImpl) Record(ctx context.Context, organizationID string, newLog checklog.CheckLog) (checklog.CheckLogResponse, error) {
	if !newLog.CheckType.IsValid() {
		return checklog.CheckLogResponse{}, checklog.ErrInvalidCheckType
	}

	created, err := c.CheckLogRepository.Create(ctx, newLog)
	if err != nil {
		return checklog.CheckLogResponse{}, fmt.Errorf("failed to create check log: %w", err)
	}

	response := checklog.ToResponse(created)
	c.hub.Publish(organizationID, sse.Event{
		OrganizationID: organizationID,
		Event:          "check_log.created",
		Data:           response,
	})

	return response, nil
}
