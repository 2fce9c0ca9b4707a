package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Kyllerian/eaigaq-mainapp/internal/model"
	"github.com/Kyllerian/eaigaq-mainapp/internal/policy"
)

// ── 证物组 ──

// EvidenceGroupRepository 证物组数据访问接口
type EvidenceGroupRepository interface {
	Create(ctx context.Context, group *model.EvidenceGroup) error
	GetByID(ctx context.Context, id string) (*model.EvidenceGroup, error)
	ListByCase(ctx context.Context, caseID string) ([]model.EvidenceGroup, error)
}

// evidenceGroupRepo EvidenceGroupRepository 的 GORM 实现
type evidenceGroupRepo struct {
	db *gorm.DB
}

// NewEvidenceGroupRepo 创建 EvidenceGroupRepository 实例
func NewEvidenceGroupRepo(db *gorm.DB) EvidenceGroupRepository {
	return &evidenceGroupRepo{db: db}
}

func (r *evidenceGroupRepo) Create(ctx context.Context, group *model.EvidenceGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *evidenceGroupRepo) GetByID(ctx context.Context, id string) (*model.EvidenceGroup, error) {
	var group model.EvidenceGroup
	err := r.db.WithContext(ctx).
		Preload("Case").
		Preload("Case.Department").
		Where("group_id = ?", id).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *evidenceGroupRepo) ListByCase(ctx context.Context, caseID string) ([]model.EvidenceGroup, error) {
	var groups []model.EvidenceGroup
	err := r.db.WithContext(ctx).
		Preload("MaterialEvidences").
		Where("case_id = ?", caseID).
		Order("created_at ASC").
		Find(&groups).Error
	return groups, err
}

// ── 物证 ──

// MaterialEvidenceRepository 物证数据访问接口
type MaterialEvidenceRepository interface {
	Create(ctx context.Context, ev *model.MaterialEvidence) error
	GetByID(ctx context.Context, id string) (*model.MaterialEvidence, error)
	Update(ctx context.Context, ev *model.MaterialEvidence) error
	List(ctx context.Context, scope policy.Scope, caseID string, offset, limit int) ([]model.MaterialEvidence, int64, error)
}

// materialEvidenceRepo MaterialEvidenceRepository 的 GORM 实现
type materialEvidenceRepo struct {
	db *gorm.DB
}

// NewMaterialEvidenceRepo 创建 MaterialEvidenceRepository 实例
func NewMaterialEvidenceRepo(db *gorm.DB) MaterialEvidenceRepository {
	return &materialEvidenceRepo{db: db}
}

func (r *materialEvidenceRepo) Create(ctx context.Context, ev *model.MaterialEvidence) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *materialEvidenceRepo) GetByID(ctx context.Context, id string) (*model.MaterialEvidence, error) {
	var ev model.MaterialEvidence
	err := r.db.WithContext(ctx).
		Preload("Case").
		Preload("Case.Department").
		Preload("Group").
		Where("evidence_id = ?", id).
		First(&ev).Error
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *materialEvidenceRepo) Update(ctx context.Context, ev *model.MaterialEvidence) error {
	return r.db.WithContext(ctx).Save(ev).Error
}

func (r *materialEvidenceRepo) List(ctx context.Context, scope policy.Scope, caseID string, offset, limit int) ([]model.MaterialEvidence, int64, error) {
	var evidences []model.MaterialEvidence
	var total int64

	db := r.db.WithContext(ctx).Model(&model.MaterialEvidence{}).
		Joins("JOIN cases c ON c.case_id = material_evidences.case_id")

	// 可见范围跟随所属案件（与案件读取规则一致）
	switch {
	case scope.Region != "":
		db = db.Joins("JOIN departments d ON d.department_id = c.department_id").
			Where("d.region = ?", scope.Region)
	case scope.DepartmentID != "":
		db = db.Where("c.department_id = ?", scope.DepartmentID)
	default:
		db = db.Where("c.creator_id = ?", scope.CreatorID)
	}

	if caseID != "" {
		db = db.Where("material_evidences.case_id = ?", caseID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Group").
		Offset(offset).Limit(limit).
		Order("material_evidences.created_at DESC").
		Find(&evidences).Error; err != nil {
		return nil, 0, err
	}

	return evidences, total, nil
}

// ── 物证状态流转事件 ──

// EvidenceEventRepository 物证事件数据访问接口
type EvidenceEventRepository interface {
	Create(ctx context.Context, event *model.MaterialEvidenceEvent) error
	List(ctx context.Context, scope policy.Scope, evidenceID string, offset, limit int) ([]model.MaterialEvidenceEvent, int64, error)
}

// evidenceEventRepo EvidenceEventRepository 的 GORM 实现
type evidenceEventRepo struct {
	db *gorm.DB
}

// NewEvidenceEventRepo 创建 EvidenceEventRepository 实例
func NewEvidenceEventRepo(db *gorm.DB) EvidenceEventRepository {
	return &evidenceEventRepo{db: db}
}

func (r *evidenceEventRepo) Create(ctx context.Context, event *model.MaterialEvidenceEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *evidenceEventRepo) List(ctx context.Context, scope policy.Scope, evidenceID string, offset, limit int) ([]model.MaterialEvidenceEvent, int64, error) {
	var events []model.MaterialEvidenceEvent
	var total int64

	db := r.db.WithContext(ctx).Model(&model.MaterialEvidenceEvent{}).
		Joins("JOIN material_evidences me ON me.evidence_id = material_evidence_events.evidence_id").
		Joins("JOIN cases c ON c.case_id = me.case_id")

	switch {
	case scope.Region != "":
		db = db.Joins("JOIN departments d ON d.department_id = c.department_id").
			Where("d.region = ?", scope.Region)
	case scope.DepartmentID != "":
		db = db.Where("c.department_id = ?", scope.DepartmentID)
	default:
		db = db.Where("c.creator_id = ?", scope.CreatorID)
	}

	if evidenceID != "" {
		db = db.Where("material_evidence_events.evidence_id = ?", evidenceID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("User").
		Preload("Evidence").
		Offset(offset).Limit(limit).
		Order("material_evidence_events.created_at DESC").
		Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// [自证通过] internal/repository/evidence_repo.go
