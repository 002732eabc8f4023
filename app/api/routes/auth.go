package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/constant"
	"github.com/glowmate/api/pkg/domains/auth"
	"github.com/glowmate/api/pkg/dtos"
)

func AuthRoutes(r *gin.RouterGroup, s auth.Service) {
	r.POST("/register", register(s))
	r.GET("/verify-email", verifyEmail(s))
	r.POST("/login", login(s))
	r.POST("/forgot-password", forgotPassword(s))
	r.POST("/reset-password", resetPassword(s))
}

func register(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.RegisterDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation(constant.INVALID_REQUEST))
			return
		}

		resp, err := s.Register(c, req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(201, resp)
	}
}

func verifyEmail(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			respondError(c, apperr.Validation("Token is required"))
			return
		}

		if err := s.VerifyEmail(c, token); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"message": constant.EMAIL_VERIFIED})
	}
}

func login(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.LoginDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("Email and password are required"))
			return
		}

		resp, err := s.Login(c, req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, resp)
	}
}

func forgotPassword(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ForgotPasswordDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("Email is required"))
			return
		}

		if err := s.ForgotPassword(c, req.Email); err != nil {
			respondError(c, err)
			return
		}

		// Identical response whether or not the account exists.
		c.JSON(200, gin.H{"message": constant.FORGOT_PASSWORD_SENT})
	}
}

func resetPassword(s auth.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ResetPasswordDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("Token and password are required"))
			return
		}

		if err := s.ResetPassword(c, req.Token, req.Password); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{"message": constant.PASSWORD_RESET_DONE})
	}
}
