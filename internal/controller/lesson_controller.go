package controller

import (
	"errors"
	"net/http"

	"homeschool_backend/internal/model"
	"homeschool_backend/internal/service"
	"homeschool_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// CreateLessonRequest 创建课程请求（quiz_json 为结构化测验）
// swagger:model CreateLessonRequest
type CreateLessonRequest struct {
	Title      string               `json:"title" binding:"required"`
	Subject    string               `json:"subject" binding:"required"`
	GradeLevel string               `json:"grade_level" binding:"required"`
	Content    string               `json:"content" binding:"required"`
	Quiz       []model.QuizQuestion `json:"quiz_json" binding:"required"`
	StudentID  *uint                `json:"student_id"`
}

// Create godoc
// @Summary 保存一节课程
// @Tags 课程
// @Accept json
// @Produce json
// @Param body body CreateLessonRequest true "课程内容"
// @Success 200 {object} object "{id}"
// @Failure 400 {object} object "{error}"
// @Router /api/lessons [post]
func (c *LessonController) Create(ctx *gin.Context) {
	var req CreateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.LegacyError(ctx, http.StatusBadRequest, "Invalid lesson data")
		return
	}

	lesson, err := c.LessonService.CreateLesson(req.Title, req.Subject, req.GradeLevel, req.Content, req.Quiz, req.StudentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": lesson.ID})
}

// ListByGrade godoc
// @Summary 按年级列出可见课程
// @Description 带 studentId 时返回年级公共课程与该学生专属课程的并集
// @Tags 课程
// @Produce json
// @Param gradeLevel path string true "年级"
// @Param studentId query int false "学生ID"
// @Success 200 {array} model.Lesson
// @Router /api/lessons/{gradeLevel} [get]
func (c *LessonController) ListByGrade(ctx *gin.Context) {
	grade := ctx.Param("gradeLevel")

	var studentID *uint
	if raw := ctx.Query("studentId"); raw != "" {
		id := util.MustParseUint(raw)
		studentID = &id
	}

	lessons, err := c.LessonService.ListForGrade(grade, studentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, lessons)
}

// Get godoc
// @Summary 取单节课程（测验反序列化为结构化形式）
// @Tags 课程
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} model.LessonDetail
// @Router /api/lesson/{id} [get]
func (c *LessonController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	lesson, err := c.LessonService.GetLesson(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// 未命中时返回 null，而不是 404（与旧接口一致）
	ctx.JSON(http.StatusOK, lesson)
}

// GenerateLessonRequest 生成课程请求
// swagger:model GenerateLessonRequest
type GenerateLessonRequest struct {
	Subject   string `json:"subject" binding:"required"`
	Grade     string `json:"grade" binding:"required"`
	Topic     string `json:"topic" binding:"required"`
	StudentID *uint  `json:"student_id"`
}

// Generate godoc
// @Summary 调用生成服务创建课程并保存
// @Description 同步等待生成完成，无重试无缓存
// @Tags 课程
// @Accept json
// @Produce json
// @Param body body GenerateLessonRequest true "生成参数"
// @Success 200 {object} util.Response{data=model.LessonDetail}
// @Failure 502 {object} util.Response "生成服务失败"
// @Router /api/lessons/generate [post]
func (c *LessonController) Generate(ctx *gin.Context) {
	var req GenerateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.GenerateLesson(ctx.Request.Context(), req.Subject, req.Grade, req.Topic, req.StudentID)
	if err != nil {
		if errors.Is(err, util.ErrGeneration) {
			util.Error(ctx, http.StatusBadGateway, "Lesson generation failed")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, lesson)
}
