package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as declarações do token emitido pelo portal do painel
type Claims struct {
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name"`
	jwt.RegisteredClaims
}
