package authenticating

import "errors"

// Erros de autenticação
var (
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
	ErrMissingToken = errors.New("token ausente")
)
