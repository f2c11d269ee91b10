package controller

import (
	"net/http"

	"homeschool_backend/internal/service"
	"homeschool_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SeedController struct {
	SeedService *service.SeedService
}

func NewSeedController(seedService *service.SeedService) *SeedController {
	return &SeedController{SeedService: seedService}
}

// Seed godoc
// @Summary 启动种子任务
// @Description 立即返回；任务在后台逐年级检查课程并记录状态
// @Tags 种子
// @Produce json
// @Success 200 {object} object "{message}"
// @Router /api/seed [post]
func (c *SeedController) Seed(ctx *gin.Context) {
	c.SeedService.Start()
	ctx.JSON(http.StatusOK, gin.H{"message": "Seeding started in background"})
}

// Status godoc
// @Summary 查询种子任务状态
// @Tags 种子
// @Produce json
// @Success 200 {object} util.Response{data=service.SeedStatus}
// @Router /api/seed/status [get]
func (c *SeedController) Status(ctx *gin.Context) {
	status, err := c.SeedService.Status(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, status)
}
