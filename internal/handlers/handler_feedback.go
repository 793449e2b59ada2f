package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	"github.com/SscSPs/slt_feedback_app/internal/dto"
	"github.com/SscSPs/slt_feedback_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type feedbackHandler struct {
	feedbackService portssvc.FeedbackSvcFacade
}

func newFeedbackHandler(fs portssvc.FeedbackSvcFacade) *feedbackHandler {
	return &feedbackHandler{feedbackService: fs}
}

// submitFeedback godoc
// @Summary Submit feedback
// @Description Stores a star-rated comment. Each user may submit once per calendar day.
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.CreateFeedbackRequest true "Feedback and 1-5 stars"
// @Success 201 {object} dto.APIResponse{data=dto.FeedbackResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing fields, invalid stars or already submitted today"
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/feedback [post]
func (h *feedbackHandler) submitFeedback(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		_ = c.Error(errMissingUser)
		return
	}

	var req dto.CreateFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	feedback, err := h.feedbackService.SubmitFeedback(c.Request.Context(), userID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusCreated, dto.ToFeedbackResponse(feedback), "Feedback submitted successfully")
}

// listFeedbacks godoc
// @Summary List all feedback
// @Description Pages through feedback, newest first, with the submitter's name and email.
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListFeedbacksResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden: Admins only"
// @Security BearerAuth
// @Router /admin/getAllFeedbacks [get]
func (h *feedbackHandler) listFeedbacks(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	items, total, err := h.feedbackService.ListFeedbacks(c.Request.Context(), page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, dto.ToListFeedbacksResponse(items, dto.NewPaginationMeta(page, total)), "All feedbacks fetched")
}
