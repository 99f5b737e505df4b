package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims são as claims dos tokens emitidos pela API de carnês.
// O "sub" carrega o email do usuário.
type CustomClaims struct {
	UserID int    `json:"user_id"`
	Perfil string `json:"perfil"`
	jwt.RegisteredClaims
}

// Service assina e valida tokens HS256. Usado pelo backend fake.
type Service struct {
	secretKey []byte
	expiry    time.Duration
	now       func() time.Time
}

// NewService cria uma nova instância do serviço Token.
func NewService(secretKey string, expiry time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		expiry:    expiry,
		now:       time.Now,
	}
}

// GenerateToken cria um JWT assinado contendo o email, o ID e o perfil do usuário.
func (s *Service) GenerateToken(userID int, email string, perfil string) (string, error) {
	now := s.now()
	claims := CustomClaims{
		UserID: userID,
		Perfil: perfil,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "GoCarne-API",
			Subject:   email,
			ID:        strconv.FormatInt(now.UnixNano(), 36),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken valida a assinatura e a validade do token e devolve as claims.
func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("token não é válido")
	}
	return claims, nil
}

// ErrOpaqueToken indica que o token não é um JWT legível pelo cliente.
var ErrOpaqueToken = errors.New("token opaco")

// ExpiresAt lê a claim "exp" sem verificar a assinatura (o cliente não conhece a chave).
// Devolve ErrOpaqueToken quando o token não é um JWT ou não tem "exp".
func ExpiresAt(tokenString string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return time.Time{}, ErrOpaqueToken
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrOpaqueToken
	}
	return claims.ExpiresAt.Time, nil
}

// Expired indica se o token é um JWT cuja "exp" já passou em relação a now.
// Tokens opacos nunca são considerados expirados aqui; quem decide é a API.
func Expired(tokenString string, now time.Time) bool {
	exp, err := ExpiresAt(tokenString)
	if err != nil {
		return false
	}
	return !now.Before(exp)
}
