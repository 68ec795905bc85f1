package model

// TokenManager generates and validates bearer session tokens.
type TokenManager interface {
	GenerateToken(email string) (string, error)
	ParseToken(token string) (string, error)
}
