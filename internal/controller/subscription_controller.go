package controller

import (
	"errors"

	"qudurat_backend/internal/service"
	"qudurat_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubscriptionController struct {
	Service *service.SubscriptionService
}

func NewSubscriptionController(svc *service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{Service: svc}
}

// ListPlans godoc
// @Summary Available subscription plans
// @Tags subscriptions
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/plans [get]
func (c *SubscriptionController) ListPlans(ctx *gin.Context) {
	plans, err := c.Service.ListPlans()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, plans)
}

// Subscribe godoc
// @Summary Open a pending subscription for a plan
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubscribeRequest true "plan and payment reference"
// @Success 201 {object} util.Response
// @Router /api/subscriptions [post]
func (c *SubscriptionController) Subscribe(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.Service.Subscribe(user.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrPlanNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, sub)
}

// VerifyPayment godoc
// @Summary Verify payment and activate the subscription
// @Tags subscriptions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "subscription id"
// @Success 200 {object} util.Response
// @Failure 402 {object} util.Response "payment not confirmed"
// @Router /api/subscriptions/{id}/verify [post]
func (c *SubscriptionController) VerifyPayment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	sub, err := c.Service.VerifyPayment(user.UserID, id)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPaymentNotVerified):
			util.Error(ctx, 402, err.Error())
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, sub)
}

// ListMine godoc
// @Summary Current user's subscriptions
// @Tags subscriptions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/subscriptions [get]
func (c *SubscriptionController) ListMine(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	subs, err := c.Service.ListMine(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subs)
}

// Active godoc
// @Summary Current active subscription, if any
// @Tags subscriptions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/subscriptions/active [get]
func (c *SubscriptionController) Active(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sub, err := c.Service.Active(user.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, sub)
}
