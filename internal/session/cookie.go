package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// The cookie value is an HS256-signed token whose only claim is the session
// id. Signing makes the cookie tamper-evident without putting any user data
// in it; the id stays meaningless to the client either way.

func signSessionID(secret []byte, sid string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": sid})
	return token.SignedString(secret)
}

// parseSessionID extracts the session id from a cookie value. Any failure
// (bad signature, wrong algorithm, garbage) yields ok=false; a bad cookie
// must read as "no session", never as a request failure.
func parseSessionID(secret []byte, value string) (string, bool) {
	token, err := jwt.Parse(value, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", false
	}
	return sid, true
}
