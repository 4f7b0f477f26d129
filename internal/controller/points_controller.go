package controller

import (
	"errors"
	"strconv"

	"qudurat_backend/internal/service"
	"qudurat_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PointsController struct {
	Service *service.PointsService
}

func NewPointsController(svc *service.PointsService) *PointsController {
	return &PointsController{Service: svc}
}

// Balance godoc
// @Summary Current points balance
// @Tags points
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/points/balance [get]
func (c *PointsController) Balance(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	balance, err := c.Service.Balance(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"balance": balance})
}

// Transactions godoc
// @Summary Points ledger for the current user
// @Tags points
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/points/transactions [get]
func (c *PointsController) Transactions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	txs, total, err := c.Service.Transactions(user.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: txs, Total: total, Page: page, Limit: limit})
}

// ListRewards godoc
// @Summary Rewards available for redemption
// @Tags points
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/rewards [get]
func (c *PointsController) ListRewards(ctx *gin.Context) {
	rewards, err := c.Service.ListRewards()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rewards)
}

// Redeem godoc
// @Summary Redeem a reward with points
// @Tags points
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "reward id"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response "insufficient points"
// @Router /api/rewards/{id}/redeem [post]
func (c *PointsController) Redeem(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	rewardID := util.MustParseUint(ctx.Param("id"))
	redemption, err := c.Service.Redeem(user.UserID, rewardID)
	if err != nil {
		if errors.Is(err, util.ErrInsufficientPoints) {
			util.Conflict(ctx, err.Error())
		} else {
			util.NotFound(ctx)
		}
		return
	}

	util.Success(ctx, redemption)
}
