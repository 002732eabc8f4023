package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/constant"
	"github.com/glowmate/api/pkg/domains/waitlist"
	"github.com/glowmate/api/pkg/dtos"
)

func WaitlistRoutes(r *gin.RouterGroup, s waitlist.Service) {
	r.POST("", join(s))
	r.POST("/verify", verifyWaitlist(s))
}

func join(s waitlist.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.JoinWaitlistDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("Email is required"))
			return
		}

		status, created, err := s.Join(c, req)
		if err != nil {
			respondError(c, err)
			return
		}

		if created {
			c.JSON(201, gin.H{
				"message": constant.WAITLIST_JOINED,
				"data":    status,
			})
			return
		}

		message := constant.WAITLIST_ALREADY_ON
		if !status.IsVerified {
			message = constant.WAITLIST_RESENT
		}
		c.JSON(200, gin.H{
			"message": message,
			"data":    status,
		})
	}
}

func verifyWaitlist(s waitlist.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.VerifyWaitlistDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("Token is required"))
			return
		}

		if err := s.Verify(c, req.Token); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"message": constant.WAITLIST_VERIFIED})
	}
}
