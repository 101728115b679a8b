package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Session tokens are HS256 JWTs carrying the session id as jti and the user
// id as sub. They have no expiry; deleting the session revokes them.
type tokenSigner struct {
	secret []byte
}

func (s tokenSigner) sign(sessionID, userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:      sessionID,
		Subject: userID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// parse returns the session id of a well-formed, correctly signed token.
func (s tokenSigner) parse(tokenString string) (string, bool) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", false
	}
	if claims.ID == "" || claims.Subject == "" {
		return "", false
	}
	return claims.ID, true
}
