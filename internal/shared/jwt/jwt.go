package jwt

import (
	"os"
	"time"

	jw "github.com/golang-jwt/jwt/v5"

	"circle-service/internal/apperr"
)

func secret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("replace-this-with-a-strong-secret")
}

func ttl() time.Duration {
	if s := os.Getenv("JWT_TTL"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return 24 * time.Hour
}

func Make(userID string) (string, error) {
	claims := jw.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl()).Unix(),
	}
	return jw.NewWithClaims(jw.SigningMethodHS256, claims).SignedString(secret())
}

func Parse(tok string) (string, error) {
	t, err := jw.Parse(tok, func(t *jw.Token) (any, error) { return secret(), nil })
	if err != nil || !t.Valid {
		return "", apperr.Unauthenticatedf("invalid token")
	}
	mc, ok := t.Claims.(jw.MapClaims)
	if !ok {
		return "", apperr.Unauthenticatedf("bad claims")
	}
	uid, _ := mc["sub"].(string)
	if uid == "" {
		return "", apperr.Unauthenticatedf("missing subject")
	}
	return uid, nil
}
