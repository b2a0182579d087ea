package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identifica o admin dono do token. Nome é o valor gravado em
// admin_responsavel quando ele pega uma ficha.
type Claims struct {
	AdminID uint   `json:"adminId"`
	Nome    string `json:"nome"`
	jwt.RegisteredClaims
}

// Emissor assina e valida tokens HS256.
type Emissor struct {
	segredo []byte
	ttl     time.Duration
	agora   func() time.Time
}

func NewEmissor(segredo string, ttl time.Duration) *Emissor {
	return &Emissor{segredo: []byte(segredo), ttl: ttl, agora: time.Now}
}

// GerarToken gera um JWT com validade ttl
func (e *Emissor) GerarToken(adminID uint, nome string) (string, error) {
	now := e.agora()
	claims := &Claims{
		AdminID: adminID,
		Nome:    nome,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(adminID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(e.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(e.segredo)
}

// ValidarToken valida assinatura e expiração e retorna as claims
func (e *Emissor) ValidarToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(e.agora),
	)
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return e.segredo, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("não foi possível extrair claims")
	}
	if claims.Nome == "" {
		return nil, errors.New("token sem nome do admin")
	}
	return claims, nil
}
