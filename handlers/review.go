package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/review"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves /api/v1/reviews.
type ReviewHandler struct {
	Service review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review", "message": err.Error()})
		return
	}
	dto, err := h.Service.CreateReview(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err, "Failed to create review")
		return
	}
	c.JSON(http.StatusCreated, dto)
}

func (h *ReviewHandler) UpdateReviewHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review", "message": err.Error()})
		return
	}
	dto, err := h.Service.UpdateReview(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update review")
		return
	}
	c.JSON(http.StatusOK, dto)
}

// DeleteReviewHandler is shared by the author route and the admin route.
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteReview(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete review")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

func (h *ReviewHandler) GetMyReviewsHandler(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	list, err := h.Service.GetPatientReviews(c.Request.Context(), caller.ID)
	if err != nil {
		respondError(c, err, "Failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ReviewHandler) GetDoctorReviewsHandler(c *gin.Context) {
	list, err := h.Service.GetDoctorReviews(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		respondError(c, err, "Failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ReviewHandler) GetDoctorRatingSummaryHandler(c *gin.Context) {
	summary, err := h.Service.GetDoctorRatingSummary(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		respondError(c, err, "Failed to compute rating summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReviewHandler) GetAllReviewsHandler(c *gin.Context) {
	list, err := h.Service.GetAllReviews(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, list)
}
