// Package util contains locale helpers shared across layers: Chilean RUT
// normalization and check-digit validation, mobile phone validation, social
// handle normalization and CLP amount formatting.
package util

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// chileanMobileRe matches "+56 9 XXXX XXXX" and the usual abbreviations
// ("9 XXXX XXXX", "569XXXXXXXX", "9XXXXXXXX").
var chileanMobileRe = regexp.MustCompile(`^(\+?56)?(\s?)(9)(\s?)[0-9]{4}(\s?)[0-9]{4}$`)

// rutCleanRe strips everything that is not a digit or the K check digit.
var rutCleanRe = regexp.MustCompile(`[^0-9kK]`)

// Bancos is the fixed list of accepted payout banks.
var Bancos = []string{
	"Banco de Chile",
	"Banco Santander",
	"Banco Estado",
	"Banco BCI",
	"Banco Scotiabank",
	"Banco Itaú",
	"Banco Security",
	"Banco Falabella",
	"Banco Ripley",
	"Banco Consorcio",
	"Banco Internacional",
	"Banco BICE",
	"Banco Edwards Citi",
	"Banco BTG Pactual",
	"Coopeuch",
}

// TiposCuenta is the fixed list of accepted account types.
var TiposCuenta = []string{
	"Cuenta Corriente",
	"Cuenta Vista",
	"Cuenta RUT",
	"Cuenta de Ahorro",
	"Cuenta Chequera Electrónica",
}

// IsValidChileanPhone reports whether the string is a Chilean mobile number.
func IsValidChileanPhone(phone string) bool {
	return chileanMobileRe.MatchString(phone)
}

// FormatRut normalizes any accepted RUT spelling (11111111-1, 111111111,
// 11.111.111-1) to the canonical punctuated form "11.111.111-1". It does not
// validate the check digit; callers pair it with IsValidRut.
func FormatRut(rut string) string {
	cleaned := rutCleanRe.ReplaceAllString(rut, "")
	if cleaned == "" {
		return ""
	}

	body := cleaned[:len(cleaned)-1]
	dv := strings.ToUpper(cleaned[len(cleaned)-1:])
	if body == "" {
		return dv
	}

	var sb strings.Builder
	missing := len(body) % 3
	if missing > 0 {
		sb.WriteString(body[:missing])
	}
	for i := missing; i < len(body); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(body[i : i+3])
	}

	return sb.String() + "-" + dv
}

// IsValidRut validates a Chilean RUT by recomputing its modulo-11 check digit.
// Any punctuation style is accepted.
func IsValidRut(rut string) bool {
	cleaned := rutCleanRe.ReplaceAllString(rut, "")
	if len(cleaned) < 2 {
		return false
	}

	body := cleaned[:len(cleaned)-1]
	dv := strings.ToUpper(cleaned[len(cleaned)-1:])

	num, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		return false
	}

	m := 0
	s := 1
	for i := num; i > 0; i /= 10 {
		s = (s + int(i%10)*(9-m%6)) % 11
		m++
	}

	expected := "K"
	if s > 0 {
		expected = strconv.Itoa(s - 1)
	}

	return expected == dv
}

// FormatInstagram normalizes a handle so it always carries the leading @.
func FormatInstagram(handle string) string {
	cleaned := strings.TrimSpace(handle)
	if cleaned == "" {
		return ""
	}
	if strings.HasPrefix(cleaned, "@") {
		return cleaned
	}

	return "@" + cleaned
}

// IsValidBanco reports whether the bank is on the accepted list.
func IsValidBanco(banco string) bool {
	return slices.Contains(Bancos, banco)
}

// IsValidTipoCuenta reports whether the account type is on the accepted list.
func IsValidTipoCuenta(tipo string) bool {
	return slices.Contains(TiposCuenta, tipo)
}

// FormatCLP renders an amount of Chilean pesos ("$1.234.567"). CLP has no
// fractional unit.
func FormatCLP(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var sb strings.Builder
	missing := len(digits) % 3
	if missing > 0 {
		sb.WriteString(digits[:missing])
	}
	for i := missing; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(digits[i : i+3])
	}

	if negative {
		return "-$" + sb.String()
	}

	return "$" + sb.String()
}

// FormatFecha renders a timestamp as dd/MM/yyyy, the fixed display locale.
func FormatFecha(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatFechaHora renders a timestamp as dd/MM/yyyy HH:mm.
func FormatFechaHora(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
