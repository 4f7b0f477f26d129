package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"qudurat_backend/internal/model"
	"qudurat_backend/internal/repository"
	"qudurat_backend/internal/service"
	"qudurat_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlacementController struct {
	Service         *service.PlacementService
	QuestionService *service.PlacementQuestionService
	Storage         *service.StorageService
	Results         *repository.PlacementResultRepository
}

func NewPlacementController(svc *service.PlacementService, questionSvc *service.PlacementQuestionService, storage *service.StorageService, results *repository.PlacementResultRepository) *PlacementController {
	return &PlacementController{
		Service:         svc,
		QuestionService: questionSvc,
		Storage:         storage,
		Results:         results,
	}
}

// Start godoc
// @Summary Start (or restart) the placement test
// @Tags placement
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.PlacementQuestionView}
// @Failure 404 {object} util.Response "no questions available"
// @Router /api/placement/start [post]
func (c *PlacementController) Start(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.Service.Start(user.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNoQuestionsAvailable) {
			util.Error(ctx, 404, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, view)
}

type AnswerRequest struct {
	Option model.OptionKey `json:"option"`
}

// Answer godoc
// @Summary Submit the answer to the current question
// @Tags placement
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AnswerRequest true "selected option key"
// @Success 200 {object} util.Response{data=service.AnswerOutcome}
// @Failure 400 {object} util.Response "no or invalid selection"
// @Failure 409 {object} util.Response "test already finished"
// @Router /api/placement/answer [post]
func (c *PlacementController) Answer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.Service.Answer(user.UserID, req.Option)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoSelection), errors.Is(err, util.ErrInvalidOption):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrTestNotStarted):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrTestFinished):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, outcome)
}

// Abandon godoc
// @Summary Discard the in-flight placement session
// @Tags placement
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/placement/session [delete]
func (c *PlacementController) Abandon(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	c.Service.Abandon(user.UserID)
	util.Success(ctx, nil)
}

// GetResult godoc
// @Summary Latest persisted placement result with advice
// @Tags placement
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.PlacementOutcome}
// @Failure 404 {object} util.Response
// @Router /api/placement/result [get]
func (c *PlacementController) GetResult(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	outcome, err := c.Service.Result(user.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, outcome)
}

// CreateQuestion godoc
// @Summary Create a placement question
// @Tags placement-admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.PlacementQuestionRequest true "question"
// @Success 201 {object} util.Response
// @Router /api/admin/placement/questions [post]
func (c *PlacementController) CreateQuestion(ctx *gin.Context) {
	var req service.PlacementQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuestionService.Create(req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, q)
}

// UpdateQuestion godoc
// @Summary Update a placement question
// @Tags placement-admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Param body body service.PlacementQuestionRequest true "question"
// @Success 200 {object} util.Response
// @Router /api/admin/placement/questions/{id} [put]
func (c *PlacementController) UpdateQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.PlacementQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuestionService.Update(id, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, q)
}

// DeleteQuestion godoc
// @Summary Delete a placement question
// @Tags placement-admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Router /api/admin/placement/questions/{id} [delete]
func (c *PlacementController) DeleteQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if err := c.QuestionService.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListQuestions godoc
// @Summary List placement questions
// @Tags placement-admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/placement/questions [get]
func (c *PlacementController) ListQuestions(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	qs, total, err := c.QuestionService.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: qs, Total: total, Page: page, Limit: limit})
}

// ListResults godoc
// @Summary List all finalized placement results
// @Tags placement-admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/placement/results [get]
func (c *PlacementController) ListResults(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	results, total, err := c.Results.ListAll(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: results, Total: total, Page: page, Limit: limit})
}

// UploadQuestionImage godoc
// @Summary Upload an image for a question prompt or option
// @Tags placement-admin
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "image file"
// @Success 200 {object} util.Response
// @Router /api/admin/placement/questions/image [post]
func (c *PlacementController) UploadQuestionImage(ctx *gin.Context) {
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

	if _, err := util.ValidateMimeType(file, []string{util.MimeImage}); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if _, err := file.Seek(0, 0); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	filename := fmt.Sprintf("placement/%d%s", time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))
	url, err := c.Storage.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
