package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"gocarne/internal/domain"
	apperror "gocarne/internal/errors"
	"gocarne/internal/pkg/token"
)

// ContextKey é o tipo das chaves de contexto deste pacote.
type ContextKey int

const (
	UserClaimsKey ContextKey = iota
)

// UserClaims são os dados do usuário extraídos do JWT e anexados ao contexto.
type UserClaims struct {
	UserID int
	Email  string
	Perfil domain.Perfil
}

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware valida o "Authorization: Bearer <token>" e anexa as claims ao contexto.
func NewAuthMiddleware(tokenSvc TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				WriteError(w, apperror.NewUnauthorizedError("Não autenticado."))
				return
			}

			claims, err := tokenSvc.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				WriteError(w, apperror.NewUnauthorizedError("Token inválido ou expirado."))
				return
			}

			userClaims := UserClaims{
				UserID: claims.UserID,
				Email:  claims.Subject,
				Perfil: domain.Perfil(claims.Perfil),
			}
			ctx := context.WithValue(r.Context(), UserClaimsKey, userClaims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserClaimsFromContext extrai as claims anexadas pelo NewAuthMiddleware.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}

// PermissionMiddleware restringe a rota aos perfis informados. Deve rodar depois do NewAuthMiddleware.
func PermissionMiddleware(required ...domain.Perfil) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetUserClaimsFromContext(r.Context())
			if !ok {
				WriteError(w, apperror.NewUnauthorizedError("Não autenticado."))
				return
			}

			for _, perfil := range required {
				if claims.Perfil == perfil {
					next.ServeHTTP(w, r)
					return
				}
			}
			WriteError(w, apperror.NewForbiddenError("Você não tem permissão para realizar esta operação."))
		})
	}
}

// WriteError responde no formato {"detail": "..."} com o status do erro.
func WriteError(w http.ResponseWriter, err error) {
	status, _, _ := apperror.Describe(err)
	if status == 0 {
		status = http.StatusBadGateway
	}
	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Detail: apperror.Message(err)})
}
