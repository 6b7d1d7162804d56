package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Introdução à Programação", "introducao-a-programacao"},
		{"Hello   World!", "hello-world"},
		{"  Lição 1: Variáveis  ", "licao-1-variaveis"},
		{"UPPER case Title", "upper-case-title"},
		{"---already--hyphenated---", "already-hyphenated"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Generate(tc.in), "input %q", tc.in)
	}
}
