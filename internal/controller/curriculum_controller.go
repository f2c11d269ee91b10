package controller

import (
	"homeschool_backend/internal/service"
	"homeschool_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CurriculumController struct{}

func NewCurriculumController() *CurriculumController {
	return &CurriculumController{}
}

// Get godoc
// @Summary 内置课程大纲（按年级的科目与主题）
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/curriculum [get]
func (c *CurriculumController) Get(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"subjects": service.Subjects,
		"grades":   service.Grades,
		"topics":   service.CurriculumTopics,
	})
}
