package model

import "time"

// ── 证物状态枚举 ──

const (
	EvidenceInStorage     = "IN_STORAGE"     // 在库
	EvidenceDestroyed     = "DESTROYED"      // 已销毁
	EvidenceTaken         = "TAKEN"          // 已领取
	EvidenceOnExamination = "ON_EXAMINATION" // 送检中
	EvidenceArchived      = "ARCHIVED"       // 已归档
)

// EvidenceStatusValid 判断是否为合法证物状态
func EvidenceStatusValid(s string) bool {
	switch s {
	case EvidenceInStorage, EvidenceDestroyed, EvidenceTaken, EvidenceOnExamination, EvidenceArchived:
		return true
	}
	return false
}

// evidenceStatusDisplay 展示名（与上游系统一致，俄文）
var evidenceStatusDisplay = map[string]string{
	EvidenceInStorage:     "На хранении",
	EvidenceDestroyed:     "Уничтожен",
	EvidenceTaken:         "Взят",
	EvidenceOnExamination: "На экспертизе",
	EvidenceArchived:      "В архиве",
}

// EvidenceStatusDisplay 返回状态展示名；非法值原样返回
func EvidenceStatusDisplay(s string) string {
	if d, ok := evidenceStatusDisplay[s]; ok {
		return d
	}
	return s
}

// EvidenceGroup 证物组表 — 对应 evidence_groups
// 每个证物组恰好挂在一个案件下，仅案件创建者可建组
type EvidenceGroup struct {
	GroupID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"group_id"`
	Name    string `gorm:"type:varchar(255);not null"                     json:"name"`
	CaseID  string `gorm:"type:uuid;not null"                             json:"case_id"`
	Active  bool   `gorm:"not null;default:true"                          json:"active"`
	BaseModel

	// 关联
	Case              *Case              `gorm:"foreignKey:CaseID;references:CaseID" json:"case,omitempty"`
	MaterialEvidences []MaterialEvidence `gorm:"foreignKey:GroupID;references:GroupID" json:"material_evidences,omitempty"`
}

// TableName 指定表名
func (EvidenceGroup) TableName() string { return "evidence_groups" }

// MaterialEvidence 物证表 — 对应 material_evidences
// barcode 全局唯一，创建时由服务端分配且不可变更
type MaterialEvidence struct {
	EvidenceID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"evidence_id"`
	Name        string `gorm:"type:varchar(255);not null"                     json:"name"`
	Description string `gorm:"type:text;not null;default:''"                  json:"description"`
	CaseID      string `gorm:"type:uuid;not null"                             json:"case_id"`
	GroupID     string `gorm:"type:uuid;not null"                             json:"group_id"`
	Status      string `gorm:"type:varchar(20);not null;default:'IN_STORAGE'" json:"status"`
	Barcode     string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"barcode"`
	Active      bool   `gorm:"not null;default:true"                          json:"active"`
	BaseModel

	// 关联
	Case  *Case          `gorm:"foreignKey:CaseID;references:CaseID"   json:"case,omitempty"`
	Group *EvidenceGroup `gorm:"foreignKey:GroupID;references:GroupID" json:"group,omitempty"`
}

// TableName 指定表名
func (MaterialEvidence) TableName() string { return "material_evidences" }

// MaterialEvidenceEvent 物证状态流转事件 — 对应 material_evidence_events
// 每次状态变更追加一条，永不修改
type MaterialEvidenceEvent struct {
	EventID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	UserID     string    `gorm:"type:uuid;not null"                             json:"user_id"`
	EvidenceID string    `gorm:"type:uuid;not null"                             json:"evidence_id"`
	Action     string    `gorm:"type:varchar(20);not null"                      json:"action"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	// 关联
	User     *User             `gorm:"foreignKey:UserID;references:UserID"             json:"user,omitempty"`
	Evidence *MaterialEvidence `gorm:"foreignKey:EvidenceID;references:EvidenceID"     json:"evidence,omitempty"`
}

// TableName 指定表名
func (MaterialEvidenceEvent) TableName() string { return "material_evidence_events" }

// [自证通过] internal/model/evidence.go
