package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "52998224725", OnlyDigits("529.982.247-25"))
	assert.Equal(t, "52998224725", OnlyDigits("52998224725"))
	assert.Equal(t, "", OnlyDigits("abc-./"))
}

func TestIsValidCPF(t *testing.T) {
	testCases := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"válido sem máscara", "52998224725", true},
		{"válido com máscara", "529.982.247-25", true},
		{"válido de referência", "111.444.777-35", true},
		{"dígito verificador errado", "52998224724", false},
		{"segundo dígito errado", "11144477734", false},
		{"todos os dígitos iguais", "11111111111", false},
		{"zeros repetidos", "00000000000", false},
		{"curto demais", "123", false},
		{"longo demais", "529982247251", false},
		{"vazio", "", false},
		{"letras no lugar de dígitos", "5299822472a", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidCPF(tc.cpf))
		})
	}
}
