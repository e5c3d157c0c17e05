package handlers

import (
	userRepoPkg "salonq/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	LogoutHandler   gin.HandlerFunc
	MeHandler       gin.HandlerFunc

	// OTP endpoints
	RequestOTPHandler gin.HandlerFunc
	VerifyOTPHandler  gin.HandlerFunc

	// Customer queue endpoints
	CheckInHandler    gin.HandlerFunc
	MyCheckInsHandler gin.HandlerFunc
	GetEntryHandler   gin.HandlerFunc
	CancelHandler     gin.HandlerFunc

	// Payment endpoints
	CreateOrderHandler   gin.HandlerFunc
	VerifyPaymentHandler gin.HandlerFunc

	// Public directory endpoints
	ListSalonsHandler    gin.HandlerFunc
	NearbySalonsHandler  gin.HandlerFunc
	GetSalonHandler      gin.HandlerFunc
	SalonServicesHandler gin.HandlerFunc
	SalonStaffHandler    gin.HandlerFunc

	// Salon admin queue endpoints
	ListQueueHandler    gin.HandlerFunc
	ListPendingHandler  gin.HandlerFunc
	ApproveHandler      gin.HandlerFunc
	RejectHandler       gin.HandlerFunc
	UpdateStatusHandler gin.HandlerFunc
	DashboardHandler    gin.HandlerFunc

	// Salon admin profile endpoints
	OnboardHandler       gin.HandlerFunc
	MySalonHandler       gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc

	// Salon admin catalog endpoints
	ListMyServicesHandler gin.HandlerFunc
	CreateServiceHandler  gin.HandlerFunc
	UpdateServiceHandler  gin.HandlerFunc
	DeleteServiceHandler  gin.HandlerFunc
	ListMyStaffHandler    gin.HandlerFunc
	CreateStaffHandler    gin.HandlerFunc
	UpdateStaffHandler    gin.HandlerFunc
	DeleteStaffHandler    gin.HandlerFunc

	// Main admin endpoints
	GetAllUsersHandler  gin.HandlerFunc
	AdminListSalons     gin.HandlerFunc
	AdminSetSalonStatus gin.HandlerFunc
}
