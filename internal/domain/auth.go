package domain

import (
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ScopeAll libera todas as rotas; usado quando a autenticação está desabilitada
const ScopeAll = "*"

const (
	ScopeViews = "views"
	ScopeCron  = "cron"
)

type Claims struct {
	ClientID string   `json:"client_id"`
	Scopes   []string `json:"scopes"`
	jwt.RegisteredClaims
}

func (c *Claims) HasScope(scope string) bool {
	if c == nil {
		return false
	}
	return slices.Contains(c.Scopes, ScopeAll) || slices.Contains(c.Scopes, scope)
}

type TokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Scopes      []string  `json:"scopes"`
}
