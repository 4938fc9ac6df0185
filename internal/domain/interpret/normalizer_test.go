package interpret

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "PAGUE 200", "pague 200"},
		{"strips acute accents", "Pagué $200 de seguro", "pague $200 de seguro"},
		{"strips tilde", "el año pasado", "el ano pasado"},
		{"strips diaeresis", "pingüino", "pinguino"},
		{"keeps inverted punctuation", "¿Cuánto gané?", "¿cuanto gane?"},
		{"empty string", "", ""},
		{"digits untouched", "1.574,14", "1.574,14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Pagué $200 de seguro del mes de noviembre",
		"¿CUÁNTO GANÉ EN NOVIEMBRE?",
		"ñoño güero",
		"",
		"hola 🙂",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalizing twice must equal normalizing once for %q", in)
	}
}
