package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"qudurat_backend/internal/service"
	"qudurat_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TicketController struct {
	Service *service.TicketService
	Storage *service.StorageService
}

func NewTicketController(svc *service.TicketService, storage *service.StorageService) *TicketController {
	return &TicketController{Service: svc, Storage: storage}
}

// Create godoc
// @Summary Open a support ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateTicketRequest true "ticket"
// @Success 201 {object} util.Response
// @Router /api/tickets [post]
func (c *TicketController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ticket, err := c.Service.Create(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, ticket)
}

// UploadAttachment godoc
// @Summary Upload a ticket attachment
// @Tags tickets
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "image or PDF"
// @Success 200 {object} util.Response
// @Router /api/tickets/attachment [post]
func (c *TicketController) UploadAttachment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	if _, err := util.ValidateMimeType(file, []string{util.MimeImage, util.MimePDF}); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if _, err := file.Seek(0, 0); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	filename := fmt.Sprintf("tickets/%d/%d%s", user.UserID, time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))
	url, err := c.Storage.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}

// ListMine godoc
// @Summary Current user's tickets
// @Tags tickets
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/tickets [get]
func (c *TicketController) ListMine(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	tickets, err := c.Service.ListMine(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tickets)
}

// Detail godoc
// @Summary Ticket with its replies
// @Tags tickets
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "ticket id"
// @Success 200 {object} util.Response{data=service.TicketDetail}
// @Router /api/tickets/{id} [get]
func (c *TicketController) Detail(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	detail, err := c.Service.Detail(ctx.Param("id"), user)
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.NotFound(ctx)
		}
		return
	}
	util.Success(ctx, detail)
}

// Reply godoc
// @Summary Reply to a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "ticket id"
// @Param body body service.ReplyRequest true "reply"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response "ticket closed"
// @Router /api/tickets/{id}/replies [post]
func (c *TicketController) Reply(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.Service.Reply(ctx.Param("id"), user, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTicketClosed):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.NotFound(ctx)
		}
		return
	}

	util.Created(ctx, reply)
}

// AdminList godoc
// @Summary List all tickets
// @Tags tickets-admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Param status query string false "open, answered or closed"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/tickets [get]
func (c *TicketController) AdminList(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	status := ctx.Query("status")

	tickets, total, err := c.Service.ListAll(page, limit, status)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: tickets, Total: total, Page: page, Limit: limit})
}

// Close godoc
// @Summary Close a ticket
// @Tags tickets-admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "ticket id"
// @Success 200 {object} util.Response
// @Router /api/admin/tickets/{id}/close [post]
func (c *TicketController) Close(ctx *gin.Context) {
	if err := c.Service.Close(ctx.Param("id")); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}
