package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Kyllerian/eaigaq-mainapp/internal/model"
	"github.com/Kyllerian/eaigaq-mainapp/internal/policy"
)

// CaseListFilters 案件列表过滤条件（在可见范围之上叠加）
type CaseListFilters struct {
	DepartmentID string
	Search       string // 案件名 OR 创建者姓名，不区分大小写子串（两字段取或）
}

// CaseRepository 案件数据访问接口
type CaseRepository interface {
	Create(ctx context.Context, cs *model.Case) error
	GetByID(ctx context.Context, id string) (*model.Case, error)
	Update(ctx context.Context, cs *model.Case) error
	List(ctx context.Context, scope policy.Scope, filters *CaseListFilters, offset, limit int) ([]model.Case, int64, error)
}

// caseRepo CaseRepository 的 GORM 实现
type caseRepo struct {
	db *gorm.DB
}

// NewCaseRepo 创建 CaseRepository 实例
func NewCaseRepo(db *gorm.DB) CaseRepository {
	return &caseRepo{db: db}
}

func (r *caseRepo) Create(ctx context.Context, cs *model.Case) error {
	return r.db.WithContext(ctx).Create(cs).Error
}

func (r *caseRepo) GetByID(ctx context.Context, id string) (*model.Case, error) {
	var cs model.Case
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Department").
		Where("case_id = ?", id).
		First(&cs).Error
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

func (r *caseRepo) Update(ctx context.Context, cs *model.Case) error {
	return r.db.WithContext(ctx).Save(cs).Error
}

func (r *caseRepo) List(ctx context.Context, scope policy.Scope, filters *CaseListFilters, offset, limit int) ([]model.Case, int64, error) {
	var cases []model.Case
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Case{})

	// 可见范围优先于过滤条件
	switch {
	case scope.Region != "":
		db = db.Joins("JOIN departments d ON d.department_id = cases.department_id").
			Where("d.region = ?", scope.Region)
	case scope.DepartmentID != "":
		db = db.Where("cases.department_id = ?", scope.DepartmentID)
	default:
		db = db.Where("cases.creator_id = ?", scope.CreatorID)
	}

	if filters != nil {
		if filters.DepartmentID != "" {
			db = db.Where("cases.department_id = ?", filters.DepartmentID)
		}
		if filters.Search != "" {
			kw := "%" + filters.Search + "%"
			db = db.Joins("JOIN users cu ON cu.user_id = cases.creator_id").
				Where(
					"cases.name ILIKE ? OR cu.username ILIKE ? OR (cu.first_name || ' ' || cu.last_name) ILIKE ?",
					kw, kw, kw,
				)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Creator").
		Preload("Department").
		Offset(offset).Limit(limit).
		Order("cases.created_at DESC").
		Find(&cases).Error; err != nil {
		return nil, 0, err
	}

	return cases, total, nil
}

// [自证通过] internal/repository/case_repo.go
