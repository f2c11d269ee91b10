package controller

import (
	"errors"
	"net/http"

	"homeschool_backend/internal/service"
	"homeschool_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	StudentService *service.StudentService
}

func NewStudentController(studentService *service.StudentService) *StudentController {
	return &StudentController{StudentService: studentService}
}

// CreateStudentRequest 创建学生请求
// swagger:model CreateStudentRequest
type CreateStudentRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email"`
	GradeLevel string `json:"gradeLevel" binding:"required"`
	ParentID   uint   `json:"parentId" binding:"required"`
}

// Create godoc
// @Summary 家长创建学生
// @Tags 学生
// @Accept json
// @Produce json
// @Param body body CreateStudentRequest true "学生信息"
// @Success 200 {object} object "{id}"
// @Failure 400 {object} object "{error}"
// @Router /api/students [post]
func (c *StudentController) Create(ctx *gin.Context) {
	var req CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.LegacyError(ctx, http.StatusBadRequest, "Student already exists or invalid data")
		return
	}

	student, err := c.StudentService.CreateStudent(req.Name, req.Email, req.GradeLevel, req.ParentID)
	if err != nil {
		if errors.Is(err, util.ErrStudentExists) {
			util.LegacyError(ctx, http.StatusBadRequest, "Student already exists or invalid data")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": student.ID})
}

// List godoc
// @Summary 列出家长名下学生
// @Tags 学生
// @Produce json
// @Param parentId path int true "家长ID"
// @Success 200 {array} model.User
// @Router /api/students/{parentId} [get]
func (c *StudentController) List(ctx *gin.Context) {
	parentID := util.MustParseUint(ctx.Param("parentId"))

	students, err := c.StudentService.ListStudents(parentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// Delete godoc
// @Summary 删除学生（连带删除其进度记录）
// @Tags 学生
// @Produce json
// @Param id path int true "学生ID"
// @Success 200 {object} object "{success}"
// @Failure 500 {object} object "{error}"
// @Router /api/students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.StudentService.DeleteStudent(id); err != nil {
		util.LegacyError(ctx, http.StatusInternalServerError, "Failed to delete student")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
