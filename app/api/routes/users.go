package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/constant"
	"github.com/glowmate/api/pkg/domains/review"
	"github.com/glowmate/api/pkg/domains/user"
	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/state"
)

func UserRoutes(r *gin.RouterGroup, s user.Service, reviews review.Service) {
	r.GET("/me", getMe(s))
	r.PUT("/me", updateMe(s))
	r.DELETE("/me", deleteMe(s))
	r.GET("/me/skincare-routine", getRoutine(s))
	r.PUT("/me/skincare-routine", updateRoutine(s))
	r.GET("/me/reviews", myReviews(reviews))
}

func getMe(s user.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		resp, err := s.GetMe(c, state.CurrentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, resp)
	}
}

func updateMe(s user.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.UpdateProfileDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation(constant.INVALID_REQUEST))
			return
		}

		if err := s.UpdateMe(c, state.CurrentUser(c), req); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, gin.H{"message": constant.PROFILE_UPDATED})
	}
}

func deleteMe(s user.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		if err := s.DeleteMe(c, state.CurrentUser(c)); err != nil {
			respondError(c, err)
			return
		}
		c.Status(204)
	}
}

func getRoutine(s user.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		routine, err := s.GetRoutine(c, state.CurrentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, routine)
	}
}

func updateRoutine(s user.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.UpdateRoutineDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("Morning and evening must be arrays of product IDs"))
			return
		}

		if err := s.UpdateRoutine(c, state.CurrentUser(c), req); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, gin.H{"message": constant.ROUTINE_UPDATED})
	}
}

func myReviews(s review.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		reviews, err := s.ListMine(c, state.CurrentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, reviews)
	}
}
