package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/constant"
	"github.com/glowmate/api/pkg/domains/ai"
	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/state"
)

func AIRoutes(r *gin.RouterGroup, s ai.Service) {
	r.POST("/analyze-routine", analyzeRoutine(s))
	r.POST("/ask-product", askProduct(s))
}

func analyzeRoutine(s ai.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.AnalyzeRoutineDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation(constant.INVALID_REQUEST))
			return
		}

		analysis, err := s.AnalyzeRoutine(c, state.CurrentUser(c), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, analysis)
	}
}

func askProduct(s ai.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.AskProductDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation(constant.INVALID_REQUEST))
			return
		}

		advice, err := s.AskProduct(c, state.CurrentUser(c), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, advice)
	}
}
