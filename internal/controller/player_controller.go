package controller

import (
	"errors"
	"net/http"

	"homeschool_backend/internal/service"
	"homeschool_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlayerController struct {
	PlayerService *service.PlayerService
}

func NewPlayerController(playerService *service.PlayerService) *PlayerController {
	return &PlayerController{PlayerService: playerService}
}

func (c *PlayerController) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSessionNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrLessonNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrInvalidTransition):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrQuizIncomplete):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// StartSessionRequest 打开课程会话请求
// swagger:model StartSessionRequest
type StartSessionRequest struct {
	StudentID uint `json:"student_id" binding:"required"`
	LessonID  uint `json:"lesson_id" binding:"required"`
}

// Start godoc
// @Summary 学生打开一节课程，进入阅读状态
// @Tags 课程播放
// @Accept json
// @Produce json
// @Param body body StartSessionRequest true "学生与课程"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Router /api/player/sessions [post]
func (c *PlayerController) Start(ctx *gin.Context) {
	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.PlayerService.StartSession(req.StudentID, req.LessonID)
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// Get godoc
// @Summary 查询会话状态
// @Tags 课程播放
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Router /api/player/sessions/{id} [get]
func (c *PlayerController) Get(ctx *gin.Context) {
	session, err := c.PlayerService.Get(ctx.Param("id"))
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// Advance godoc
// @Summary 阅读完成，进入测验
// @Tags 课程播放
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 409 {object} util.Response "状态不允许"
// @Router /api/player/sessions/{id}/advance [post]
func (c *PlayerController) Advance(ctx *gin.Context) {
	session, err := c.PlayerService.Advance(ctx.Param("id"))
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// AnswerRequest 选择答案请求
// swagger:model AnswerRequest
type AnswerRequest struct {
	Question int `json:"question"`
	Option   int `json:"option"`
}

// Answer godoc
// @Summary 为某道题选择选项
// @Tags 课程播放
// @Accept json
// @Produce json
// @Param id path string true "会话ID"
// @Param body body AnswerRequest true "题目与选项下标"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Router /api/player/sessions/{id}/answers [put]
func (c *PlayerController) Answer(ctx *gin.Context) {
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.PlayerService.Answer(ctx.Param("id"), req.Question, req.Option)
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// Submit godoc
// @Summary 提交测验，服务端计分并异步落库
// @Description 所有题目都答完才能提交；结果立即返回，不等待进度写入
// @Tags 课程播放
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 400 {object} util.Response "还有未作答的题目"
// @Router /api/player/sessions/{id}/submit [post]
func (c *PlayerController) Submit(ctx *gin.Context) {
	session, err := c.PlayerService.Submit(ctx.Param("id"))
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// CloseRequest 关闭会话请求，to 指定去向（report 或 dashboard）
// swagger:model CloseRequest
type CloseRequest struct {
	To string `json:"to" binding:"required,oneof=report dashboard"`
}

// Close godoc
// @Summary 离开课程视图并结束会话
// @Tags 课程播放
// @Accept json
// @Produce json
// @Param id path string true "会话ID"
// @Param body body CloseRequest true "去向"
// @Success 200 {object} util.Response
// @Router /api/player/sessions/{id}/close [post]
func (c *PlayerController) Close(ctx *gin.Context) {
	var req CloseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.PlayerService.Close(ctx.Param("id"), service.ViewState(req.To)); err != nil {
		c.writeError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
