package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riadev/ria-server/dto"
	"github.com/riadev/ria-server/middleware"
	"github.com/riadev/ria-server/usecase"
	"github.com/riadev/ria-server/utils"
)

// SendCodeHandler issues a verification code. The plaintext code comes
// back as devCode; production builds deliver it over SMS only.
func SendCodeHandler(c *gin.Context, authService *usecase.AuthService) {
	var req dto.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AuthAttempts.WithLabelValues("failure", "send-code").Inc()
		utils.BadRequest(c, usecase.ErrInvalidPhone.Error())
		return
	}

	code, err := authService.SendCode(c.Request.Context(), req.Phone)
	if err != nil {
		middleware.AuthAttempts.WithLabelValues("failure", "send-code").Inc()
		respondAuthError(c, err, "Failed to send verification code")
		return
	}

	middleware.AuthAttempts.WithLabelValues("success", "send-code").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Verification code sent",
		"devCode": code,
	})
}

func RegisterHandler(c *gin.Context, authService *usecase.AuthService) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AuthAttempts.WithLabelValues("failure", "register").Inc()
		utils.BadRequest(c, usecase.ErrMissingFields.Error())
		return
	}

	user, err := authService.Register(c.Request.Context(), req.Phone, req.Code, req.Nickname)
	if err != nil {
		middleware.AuthAttempts.WithLabelValues("failure", "register").Inc()
		respondAuthError(c, err, "Registration failed")
		return
	}

	middleware.AuthAttempts.WithLabelValues("success", "register").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    dto.UserResponse{Phone: user.Phone, Nickname: user.Nickname},
	})
}

func LoginHandler(c *gin.Context, authService *usecase.AuthService) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AuthAttempts.WithLabelValues("failure", "login").Inc()
		utils.BadRequest(c, usecase.ErrMissingFields.Error())
		return
	}

	user, err := authService.Login(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		middleware.AuthAttempts.WithLabelValues("failure", "login").Inc()
		respondAuthError(c, err, "Login failed")
		return
	}

	middleware.AuthAttempts.WithLabelValues("success", "login").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    dto.UserResponse{Phone: user.Phone, Nickname: user.Nickname},
	})
}

// respondAuthError maps the auth error taxonomy onto the wire: expected
// rejections are 400 with the message verbatim, anything else is a 500.
func respondAuthError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidPhone),
		errors.Is(err, usecase.ErrMissingFields),
		errors.Is(err, usecase.ErrCodeMissing),
		errors.Is(err, usecase.ErrCodeExpired),
		errors.Is(err, usecase.ErrCodeInvalid),
		errors.Is(err, usecase.ErrPhoneTaken),
		errors.Is(err, usecase.ErrNotRegistered):
		middleware.ErrorsTotal.WithLabelValues("auth").Inc()
		utils.BadRequest(c, err.Error())
	default:
		log.Printf("auth error: %v", err)
		middleware.ErrorsTotal.WithLabelValues("internal").Inc()
		utils.InternalError(c, fallback)
	}
}
