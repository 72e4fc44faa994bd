package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/checklog"
	"github.com/ba-mirza/qr-attend-backend/internal/handler/http/response"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/jwt"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/sse"
	"github.com/go-chi/chi/v5"
)

type CheckLogHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	TodayStats(w http.ResponseWriter, r *http.Request)

	// SSE
	Stream(w http.ResponseWriter, r *http.Request)
}

type CheckLogHandlerImpl struct {
	checkLogService checklog.CheckLogService
	jwtService      jwt.Service
	hub             *sse.Hub
}

func NewCheckLogHandler(checkLogService checklog.CheckLogService, jwtService jwt.Service, hub *sse.Hub) CheckLogHandler {
	return &CheckLogHandlerImpl{
		checkLogService: checkLogService,
		jwtService:      jwtService,
		hub:             hub,
	}
}

// List implements CheckLogHandler.
func (h *CheckLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	organizationID := chi.URLParam(r, "id")
	if organizationID == "" {
		response.BadRequest(w, "Organization ID is required", nil)
		return
	}

	var filter checklog.ListFilter
	if date := r.URL.Query().Get("date"); date != "" {
		filter.Date = &date
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if officePointID := r.URL.Query().Get("office_point_id"); officePointID != "" {
		filter.OfficePointID = &officePointID
	}
	if checkType := r.URL.Query().Get("check_type"); checkType != "" {
		ct := checklog.CheckType(checkType)
		filter.CheckType = &ct
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil {
			filter.Limit = limitNum
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if offsetNum, err := strconv.Atoi(o); err == nil {
			filter.Offset = offsetNum
		}
	}

	result, err := h.checkLogService.List(r.Context(), userID, organizationID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Logs, &response.Meta{
		Limit:      filter.Limit,
		Offset:     filter.Offset,
		TotalItems: result.Total,
	})
}

// TodayStats implements CheckLogHandler.
func (h *CheckLogHandlerImpl) TodayStats(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	organizationID := chi.URLParam(r, "id")
	if organizationID == "" {
		response.BadRequest(w, "Organization ID is required", nil)
		return
	}

	stats, err := h.checkLogService.TodayStats(r.Context(), userID, organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Stream handles the SSE connection for real-time check logs. The
// organization is taken from the SSE token claims, never from the client.
func (h *CheckLogHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter (SSE doesn't support custom headers)
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	userID, organizationID, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	events, cleanup := h.hub.Subscribe(organizationID)
	defer cleanup()

	// Send initial connection event
	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"user_id\":\"%s\"}\n\n", userID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			// Send keepalive ping
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
