package handlers

import (
	"fmt"
	"net/http"

	"salonq/services/notification"
	"salonq/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OTPHandler proves phone possession for guests. A verified OTP yields a
// short-lived guest token that gates all customer queue endpoints.
type OTPHandler struct {
	Notifier notification.NotificationService
}

func NewOTPHandler(notifier notification.NotificationService) *OTPHandler {
	return &OTPHandler{Notifier: notifier}
}

// RequestOTPHandler handles POST /api/otp/request.
func (h *OTPHandler) RequestOTPHandler(c *gin.Context) {
	logger := getLogger(c)
	var req struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	otp, err := utils.InitiatePhoneOTP(req.Phone)
	if err != nil {
		logger.Error("failed to initiate OTP", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification code"})
		return
	}

	msg := fmt.Sprintf("Your SalonQ verification code is %s. It expires in %d minutes.",
		otp, int(utils.OTPTTL.Minutes()))
	if err := h.Notifier.SendSMS(req.Phone, msg); err != nil {
		logger.Error("failed to deliver OTP SMS", zap.String("phone", req.Phone), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// VerifyOTPHandler handles POST /api/otp/verify. On success it issues the guest
// token the client presents as a Bearer credential.
func (h *OTPHandler) VerifyOTPHandler(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.VerifyPhoneOTP(req.Phone, req.OTP); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired verification code"})
		return
	}

	token, err := utils.GenerateGuestToken(req.Phone)
	if err != nil {
		getLogger(c).Error("failed to issue guest token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":            token,
		"expiresInSeconds": int(utils.GuestTokenTTL.Seconds()),
	})
}
