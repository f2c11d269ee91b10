package controller

import (
	"net/http"

	"homeschool_backend/internal/service"
	"homeschool_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// CreateProgressRequest 记录测验成绩请求。answers 可选；提交时服务端按
// 存储的答案重新计分，覆盖客户端给出的 score。
// swagger:model CreateProgressRequest
type CreateProgressRequest struct {
	StudentID uint  `json:"student_id" binding:"required"`
	LessonID  uint  `json:"lesson_id" binding:"required"`
	Score     int   `json:"score"`
	Answers   []int `json:"answers"`
}

// Create godoc
// @Summary 记录一次测验成绩
// @Tags 进度
// @Accept json
// @Produce json
// @Param body body CreateProgressRequest true "成绩"
// @Success 200 {object} object "{id}"
// @Failure 400 {object} object "{error}"
// @Router /api/progress [post]
func (c *ProgressController) Create(ctx *gin.Context) {
	var req CreateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.LegacyError(ctx, http.StatusBadRequest, "Invalid progress data")
		return
	}

	record, err := c.ProgressService.Record(req.StudentID, req.LessonID, req.Score, req.Answers)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": record.ID})
}

// List godoc
// @Summary 学生成绩单（关联课程标题与科目）
// @Tags 进度
// @Produce json
// @Param studentId path int true "学生ID"
// @Success 200 {array} model.ProgressWithLesson
// @Router /api/progress/{studentId} [get]
func (c *ProgressController) List(ctx *gin.Context) {
	studentID := util.MustParseUint(ctx.Param("studentId"))

	records, err := c.ProgressService.ListForStudent(studentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}
