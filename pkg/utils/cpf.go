package utils

import "strings"

// OnlyDigits strips everything but decimal digits from v.
func OnlyDigits(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF reports whether raw is a valid Brazilian CPF. Formatting
// punctuation is ignored; the normalized value must be exactly 11 digits,
// must not be a single repeated digit, and both modulo-11 check digits must
// match.
func IsValidCPF(raw string) bool {
	cpf := OnlyDigits(raw)
	if len(cpf) != 11 {
		return false
	}

	allEqual := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	d1 := cpfCheckDigit(cpf[:9], 10)
	d2 := cpfCheckDigit(cpf[:10], 11)
	return d1 == int(cpf[9]-'0') && d2 == int(cpf[10]-'0')
}

// cpfCheckDigit computes one check digit over base using descending weights
// starting at factor. A raw remainder of 10 maps to 0.
func cpfCheckDigit(base string, factor int) int {
	total := 0
	for _, c := range base {
		total += int(c-'0') * factor
		factor--
	}
	rest := (total * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
