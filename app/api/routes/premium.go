package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/constant"
	"github.com/glowmate/api/pkg/domains/premium"
	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/state"
)

func PremiumRoutes(r *gin.RouterGroup, s premium.Service) {
	r.POST("/subscribe", subscribe(s))
}

func subscribe(s premium.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.SubscribeDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation(constant.INVALID_REQUEST))
			return
		}

		resp, err := s.Subscribe(c, state.CurrentUser(c), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, resp)
	}
}
