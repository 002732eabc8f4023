package routes

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/constant"
	"github.com/glowmate/api/pkg/domains/review"
	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/state"
)

func ReviewRoutes(r *gin.RouterGroup, s review.Service) {
	r.PUT("/:reviewId", updateReview(s))
	r.DELETE("/:reviewId", deleteReview(s))
}

func updateReview(s review.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
		if err != nil {
			respondError(c, apperr.Validation("Invalid review id"))
			return
		}

		var req dtos.UpdateReviewDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation(constant.INVALID_REQUEST))
			return
		}

		updated, err := s.Update(c, state.CurrentUser(c), uint(reviewID), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, updated)
	}
}

func deleteReview(s review.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
		if err != nil {
			respondError(c, apperr.Validation("Invalid review id"))
			return
		}

		if err := s.Delete(c, state.CurrentUser(c), uint(reviewID)); err != nil {
			respondError(c, err)
			return
		}
		c.Status(204)
	}
}
