package ficha

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Os valores vêm digitados à mão; vale o maior prefixo numérico ("1500abc" -> 1500).
var (
	prefixoDecimal = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?`)
	prefixoInteiro = regexp.MustCompile(`^[+-]?\d+`)
	prefixoHex     = regexp.MustCompile(`^([+-]?)0[xX]([0-9a-fA-F]+)`)
)

// Faixa aceita na escrita: menos de 15 dígitos inteiros e no máximo 16 casas.
// Fora disso o valor vira 0.
const (
	digitosInteirosMax = 15
	casasMax           = 16
)

func parseDecimal(s string) (decimal.Decimal, bool) {
	m := prefixoDecimal.FindString(strings.TrimSpace(s))
	if m == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(m, "+"))
	if err != nil {
		return decimal.Zero, false
	}
	return limitar(d)
}

// limitar decide só com expoente e número de dígitos do coeficiente;
// nada aqui expande 10^expoente.
func limitar(d decimal.Decimal) (decimal.Decimal, bool) {
	digitos := int64(len(new(big.Int).Abs(d.Coefficient()).Text(10)))
	ordem := digitos + int64(d.Exponent())
	if ordem > digitosInteirosMax {
		return decimal.Zero, false
	}
	if d.Exponent() >= -casasMax {
		return d, true
	}
	if ordem < -casasMax {
		return decimal.Zero, true
	}
	return d.Round(casasMax), true
}

func decimalOuZero(s string) decimal.Decimal {
	d, _ := parseDecimal(s)
	return d
}

func positivo(s string) bool {
	d, ok := parseDecimal(s)
	return ok && d.IsPositive()
}

// inteiroOuZero aceita também o prefixo 0x, em base 16.
func inteiroOuZero(s string) int {
	s = strings.TrimSpace(s)
	if m := prefixoHex.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseInt(m[1]+m[2], 16, 64)
		if err != nil {
			return 0
		}
		return int(n)
	}
	m := prefixoInteiro.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// textoDecimal devolve "" para NULL, nunca "0".
func textoDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

func textoInteiro(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func textoOpcional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func opcional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
