package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the admin dashboard aggregates.
type dashboardHandler struct {
	reportingService portssvc.ReportingService
}

func newDashboardHandler(rs portssvc.ReportingService) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

// getUserCounts godoc
// @Summary Dashboard headline counts
// @Description Active non-admin users, average feedback rating (one decimal) and soft-deleted users.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=domain.DashboardCounts}
// @Failure 403 {object} dto.ErrorResponse "Forbidden: Admins only"
// @Security BearerAuth
// @Router /admin/getUserCounts [get]
func (h *dashboardHandler) getUserCounts(c *gin.Context) {
	counts, err := h.reportingService.Counts(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, counts, "Dashboard counts fetched")
}

// getRecentUsers godoc
// @Summary Five newest users
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]domain.RecentUser}
// @Failure 403 {object} dto.ErrorResponse "Forbidden: Admins only"
// @Security BearerAuth
// @Router /admin/getRecentUsers [get]
func (h *dashboardHandler) getRecentUsers(c *gin.Context) {
	users, err := h.reportingService.RecentUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, users, "Recent users fetched")
}

// getLast7DaysUsers godoc
// @Summary Daily signups for the last 7 days
// @Description One entry per calendar date including today, oldest first; days without signups are zero.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]domain.DailyCount}
// @Failure 403 {object} dto.ErrorResponse "Forbidden: Admins only"
// @Security BearerAuth
// @Router /admin/getLast7DaysUsers [get]
func (h *dashboardHandler) getLast7DaysUsers(c *gin.Context) {
	stats, err := h.reportingService.Last7DaysUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, stats, "Last 7 days user stats")
}

// getLast4WeeksUsers godoc
// @Summary Weekly signups for the last 4 weeks
// @Description One entry per ISO week touched by the trailing 28 days, oldest first.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]domain.WeeklyCount}
// @Failure 403 {object} dto.ErrorResponse "Forbidden: Admins only"
// @Security BearerAuth
// @Router /admin/getLast4WeeksUsers [get]
func (h *dashboardHandler) getLast4WeeksUsers(c *gin.Context) {
	stats, err := h.reportingService.Last4WeeksUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, stats, "Last 4 weeks user stats")
}
