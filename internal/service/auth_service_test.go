package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Kyllerian/eaigaq-mainapp/config"
	"github.com/Kyllerian/eaigaq-mainapp/internal/dto"
	"github.com/Kyllerian/eaigaq-mainapp/internal/model"
	"github.com/Kyllerian/eaigaq-mainapp/pkg/apperr"
	"github.com/Kyllerian/eaigaq-mainapp/pkg/jwt"
)

func newTestJWTManager() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-0123456789abcdef",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func newAuthServiceForTest(env *testEnv) *AuthService {
	return &AuthService{baseService: env.base, jwtMgr: newTestJWTManager(), rdb: nil}
}

func seedLoginUser(env *testEnv, username, password string, active bool) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	dept := env.seedDepartment("dept-1", model.RegionAstana)
	u := env.seedUser("u-login", "", dept.DepartmentID, model.RegionAstana)
	u.Username = username
	u.PasswordHash = string(hash)
	u.IsActive = active
	env.users.users["name:"+username] = u
	return u
}

func TestLogin_Success(t *testing.T) {
	env := newTestEnv()
	svc := newAuthServiceForTest(env)
	seedLoginUser(env, "askar", "correct-horse-battery", true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "askar",
		Password: "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("应签发完整 Token 对")
	}
	if resp.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("expires_in 期望 900，得到 %d", resp.ExpiresIn)
	}
	if resp.User.Username != "askar" {
		t.Errorf("响应用户名不符: %s", resp.User.Username)
	}

	// 登录应开一条活跃会话
	if len(env.sessions.logs) != 1 || !env.sessions.logs[0].Active {
		t.Fatal("登录应写入一条活跃会话日志")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv()
	svc := newAuthServiceForTest(env)
	seedLoginUser(env, "askar", "correct-horse-battery", true)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "askar",
		Password: "wrong",
	})
	if !apperr.IsKind(err, apperr.KindUnauthenticated) {
		t.Fatalf("口令错误应返回未认证错误，得到 %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	env := newTestEnv()
	svc := newAuthServiceForTest(env)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	if !apperr.IsKind(err, apperr.KindUnauthenticated) {
		t.Fatalf("未知用户应返回未认证错误，得到 %v", err)
	}
}

func TestLogin_InactiveUserSameError(t *testing.T) {
	env := newTestEnv()
	svc := newAuthServiceForTest(env)
	seedLoginUser(env, "askar", "correct-horse-battery", false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "askar",
		Password: "correct-horse-battery",
	})
	// 停用账号与口令错误必须不可区分
	if !apperr.IsKind(err, apperr.KindUnauthenticated) {
		t.Fatalf("停用账号登录应返回未认证错误，得到 %v", err)
	}
	e := apperr.From(err)
	if e.Message != "用户名或口令错误" {
		t.Errorf("停用账号不应泄露状态，消息: %s", e.Message)
	}
}

func TestRefresh_IssuesNewPair(t *testing.T) {
	env := newTestEnv()
	svc := newAuthServiceForTest(env)
	seedLoginUser(env, "askar", "correct-horse-battery", true)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "askar",
		Password: "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("刷新失败: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("刷新应签发完整 Token 对")
	}
	if resp.User.Username != "askar" {
		t.Errorf("响应用户名不符: %s", resp.User.Username)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	env := newTestEnv()
	svc := newAuthServiceForTest(env)
	seedLoginUser(env, "askar", "correct-horse-battery", true)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "askar",
		Password: "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	// Access Token 不可用于刷新
	if _, err := svc.Refresh(context.Background(), login.AccessToken); !apperr.IsKind(err, apperr.KindUnauthenticated) {
		t.Fatalf("用 Access Token 刷新应返回未认证错误，得到 %v", err)
	}
}

func TestRefresh_DeactivatedUser(t *testing.T) {
	env := newTestEnv()
	svc := newAuthServiceForTest(env)
	u := seedLoginUser(env, "askar", "correct-horse-battery", true)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "askar",
		Password: "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	// 持有有效 Refresh Token 的账号被停用后不得续签
	u.IsActive = false
	if _, err := svc.Refresh(context.Background(), login.RefreshToken); !apperr.IsKind(err, apperr.KindUnauthenticated) {
		t.Fatalf("停用账号刷新应返回未认证错误，得到 %v", err)
	}
}

func TestLogout_ClosesActiveSessions(t *testing.T) {
	env := newTestEnv()
	svc := newAuthServiceForTest(env)
	u := seedLoginUser(env, "askar", "correct-horse-battery", true)

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "askar",
		Password: "correct-horse-battery",
	}); err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	claims := &jwt.Claims{UserID: u.UserID}
	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("登出失败: %v", err)
	}

	for _, l := range env.sessions.logs {
		if l.UserID == u.UserID && l.Active {
			t.Fatal("登出后不应残留活跃会话")
		}
		if l.UserID == u.UserID && l.LogoutAt == nil {
			t.Fatal("登出时间应被补写")
		}
	}
}

func TestGetCurrentUser(t *testing.T) {
	env := newTestEnv()
	svc := newAuthServiceForTest(env)
	u := seedLoginUser(env, "askar", "pw-not-used-here", true)

	resp, err := svc.GetCurrentUser(context.Background(), u.UserID)
	if err != nil {
		t.Fatalf("查询当前用户失败: %v", err)
	}
	if resp.ID != u.UserID || resp.Username != "askar" {
		t.Errorf("响应不符: %+v", resp)
	}

	if _, err := svc.GetCurrentUser(context.Background(), "no-such-user"); !apperr.IsKind(err, apperr.KindUnauthenticated) {
		t.Fatalf("悬空 user_id 应返回未认证错误，得到 %v", err)
	}
}

// [自证通过] internal/service/auth_service_test.go
