package controller

import (
	"errors"

	"qudurat_backend/internal/service"
	"qudurat_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	OTPService  *service.OTPService
}

func NewAuthController(authService *service.AuthService, otpService *service.OTPService) *AuthController {
	return &AuthController{
		AuthService: authService,
		OTPService:  otpService,
	}
}

// RegisterStudent godoc
// @Summary Register a student account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterStudentRequest true "student registration"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response "phone already registered"
// @Router /api/register/student [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req service.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.RegisterStudent(req)
	if err != nil {
		if errors.Is(err, util.ErrPhoneRegistered) {
			util.Conflict(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

// RegisterParent godoc
// @Summary Register a parent account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterParentRequest true "parent registration"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response "phone already registered"
// @Router /api/register/parent [post]
func (c *AuthController) RegisterParent(ctx *gin.Context) {
	var req service.RegisterParentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.RegisterParent(req)
	if err != nil {
		if errors.Is(err, util.ErrPhoneRegistered) {
			util.Conflict(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in with phone and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Phone, req.Password)
	if err != nil {
		util.Error(ctx, 401, err.Error())
		return
	}

	util.Success(ctx, gin.H{"token": token, "user": user})
}

type OTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// RequestOTP godoc
// @Summary Send a verification code to a phone number
// @Tags auth
// @Accept json
// @Produce json
// @Param body body OTPRequest true "phone"
// @Success 200 {object} util.Response
// @Failure 429 {object} util.Response "resend throttled"
// @Router /api/otp/request [post]
func (c *AuthController) RequestOTP(ctx *gin.Context) {
	var req OTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.OTPService.Request(req.Phone); err != nil {
		if errors.Is(err, util.ErrOTPThrottle) {
			util.Error(ctx, 429, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}

type OTPVerifyRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// VerifyOTP godoc
// @Summary Verify a phone number with a one-time code
// @Tags auth
// @Accept json
// @Produce json
// @Param body body OTPVerifyRequest true "phone and code"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "invalid or expired code"
// @Router /api/otp/verify [post]
func (c *AuthController) VerifyOTP(ctx *gin.Context) {
	var req OTPVerifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.OTPService.Verify(req.Phone, req.Code); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, gin.H{"verified": true})
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}
