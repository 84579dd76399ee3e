// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken 涵蓋所有驗證失敗：簽章錯誤、格式錯誤、已過期。
// 不對呼叫端區分原因，避免洩漏驗證細節。
var ErrInvalidToken = errors.New("invalid token")

// Claims 定義 JWT 負載內容，subject 為使用者 Email。
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService 以注入的密鑰與 TTL 簽發、驗證存取令牌。
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// TTL 回傳令牌有效期間。
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue 簽發以 subject 為主體的 HS256 令牌，到期時間為現在加上 TTL。
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify 驗證簽章與到期時間，成功回傳 subject。
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
