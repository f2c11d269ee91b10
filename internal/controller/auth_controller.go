package controller

import (
	"errors"
	"net/http"

	"homeschool_backend/internal/model"
	"homeschool_backend/internal/service"
	"homeschool_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// LoginRequest 登录/自动注册请求
// swagger:model LoginRequest
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Role       string `json:"role"`
}

// Login godoc
// @Summary 登录（首次登录自动注册）
// @Description 学生按姓名匹配，家长按姓名或邮箱匹配；未命中时自动注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body LoginRequest true "登录信息"
// @Success 200 {object} model.User
// @Failure 400 {object} object "{error}"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.LegacyError(ctx, http.StatusBadRequest, "Identifier is required")
		return
	}

	role := model.UserRole(req.Role)
	if role != model.RoleStudent {
		role = model.RoleParent
	}

	user, err := c.AuthService.Login(req.Identifier, role)
	if err != nil {
		if errors.Is(err, util.ErrIdentifierRequired) {
			util.LegacyError(ctx, http.StatusBadRequest, "Identifier is required")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
