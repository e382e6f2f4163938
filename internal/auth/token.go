package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Demo token şeması: header.payload. biçiminde üç segmentli, imzasız
// (alg=none) yapı. Geçerlilik sadece exp'in gelecekte olmasıdır,
// kriptografik doğrulama YOKTUR. Bilinen zayıf nokta; production'da
// gerçek imzalı token ya da session mekanizmasıyla değiştirilmeli.

var ErrInvalidToken = errors.New("geçersiz veya süresi dolmuş token")

type Claims struct {
	jwt.RegisteredClaims
}

func GenerateToken(username string, ttl time.Duration) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	return token.SignedString(jwt.UnsafeAllowNoneSignatureType)
}

// ValidateToken token'ı imza doğrulamadan çözer ve yalnızca exp'i
// kontrol eder. Geçerliyse subject'i döndürür.
func ValidateToken(tokenStr string) (string, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return "", ErrInvalidToken
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
