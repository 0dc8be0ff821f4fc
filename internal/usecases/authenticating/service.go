package authenticating

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/trend-dashboard-api/internal/config"
	"github.com/vfg2006/trend-dashboard-api/internal/domain"
	"github.com/vfg2006/trend-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const tokenType = "Bearer"

type Authenticator interface {
	Enabled() bool
	IssueToken(clientID, clientSecret string) (*domain.Token, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
	now func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *Service) Enabled() bool {
	return s.cfg.Auth.Enabled
}

// IssueToken troca as credenciais do cliente por um JWT com os escopos configurados
func (s *Service) IssueToken(clientID, clientSecret string) (*domain.Token, error) {
	if !s.Enabled() {
		return nil, NewAuthError(ErrAuthDisabled, apiErrors.ErrInvalidRequest, clientID, "")
	}

	if clientID == "" || clientSecret == "" {
		return nil, NewAuthError(ErrMissingRequired, apiErrors.ErrMissingRequiredData, clientID, "client_id e client_secret são obrigatórios")
	}

	if subtle.ConstantTimeCompare([]byte(clientID), []byte(s.cfg.Auth.ClientID)) != 1 {
		logrus.WithField("client_id", clientID).Warn("Tentativa de emissão de token para cliente desconhecido")
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, clientID, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.ClientSecretHash), []byte(clientSecret)); err != nil {
		logrus.WithField("client_id", clientID).Warn("Segredo incorreto na emissão de token")
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, clientID, "")
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.Auth.TokenTTL)

	claims := &domain.Claims{
		ClientID: clientID,
		Scopes:   s.cfg.Auth.Scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return nil, NewAuthError(ErrSignToken, apiErrors.ErrInternalServer, clientID, err.Error())
	}

	return &domain.Token{
		AccessToken: signed,
		TokenType:   tokenType,
		ExpiresAt:   expiresAt,
		Scopes:      claims.Scopes,
	}, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "", "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "", err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "", "")
	}

	return claims, nil
}

// HashSecret gera o hash bcrypt usado em AUTH_CLIENT_SECRET_HASH
func HashSecret(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// AnonymousClaims são usadas quando a autenticação está desabilitada
func AnonymousClaims() *domain.Claims {
	return &domain.Claims{
		ClientID: "anonymous",
		Scopes:   []string{domain.ScopeAll},
	}
}

// CodeFor retorna o código de API de um erro de autenticação
func CodeFor(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code
	}
	return apiErrors.ErrInvalidToken
}
