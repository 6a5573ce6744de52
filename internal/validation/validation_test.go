package validation_test

import (
	"testing"

	"offboardadmin/internal/models/entities"
	"offboardadmin/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCPF(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "com pontuação", in: "123.456.789-01", want: "12345678901"},
		{name: "já normalizado", in: "12345678901", want: "12345678901"},
		{name: "com espaços", in: " 123 456 789 01 ", want: "12345678901"},
		{name: "vazio", in: "", want: ""},
		{name: "só pontuação", in: ".-", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validation.NormalizeCPF(tt.in)
			assert.Equal(t, tt.want, got)
			// normalizar de novo não muda nada
			assert.Equal(t, got, validation.NormalizeCPF(got))
		})
	}
}

func TestValidCPF(t *testing.T) {
	assert.True(t, validation.ValidCPF("123.456.789-01"))
	assert.True(t, validation.ValidCPF("12345678901"))
	assert.False(t, validation.ValidCPF("1234567890"))
	assert.False(t, validation.ValidCPF("123456789012"))
	assert.False(t, validation.ValidCPF(""))
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{email: "a@b.c", valid: true},
		{email: "ana.souza@empresa.com.br", valid: true},
		{email: "a@b", valid: false},
		{email: "a.b@c", valid: false},
		{email: "@b.c", valid: false},
		{email: "a b@c.d", valid: false},
		{email: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, validation.ValidEmail(tt.email))
		})
	}
}

func TestValidateOpcoes(t *testing.T) {
	tests := []struct {
		name    string
		opcoes  []string
		wantErr bool
	}{
		{name: "duas opções válidas", opcoes: []string{"Sim", "Não"}},
		{name: "seis opções válidas", opcoes: []string{"a", "b", "c", "d", "e", "f"}},
		{name: "vazias são ignoradas", opcoes: []string{"Sim", "  ", "Não", ""}},
		{name: "uma opção só", opcoes: []string{"Sim"}, wantErr: true},
		{name: "nenhuma opção", opcoes: nil, wantErr: true},
		{name: "duplicada", opcoes: []string{"Sim", "Sim"}, wantErr: true},
		{name: "duplicada após trim", opcoes: []string{"Sim", " Sim "}, wantErr: true},
		{name: "sete opções", opcoes: []string{"a", "b", "c", "d", "e", "f", "g"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateOpcoes(tt.opcoes)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFuncionarioRules(t *testing.T) {
	valido := map[string]string{
		"cpf":   "123.456.789-01",
		"nome":  "Ana Souza",
		"email": "ana@empresa.com",
		"setor": "Engenharia",
	}

	t.Run("formulário válido passa", func(t *testing.T) {
		errs := validation.Validate(valido, validation.FuncionarioRules())
		assert.Empty(t, errs)
	})

	t.Run("campos obrigatórios vazios reprovam", func(t *testing.T) {
		errs := validation.Validate(map[string]string{}, validation.FuncionarioRules())
		assert.Contains(t, errs, "nome")
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "setor")
		assert.Contains(t, errs, "cpf")
	})

	t.Run("apenas o primeiro erro por campo", func(t *testing.T) {
		// email vazio reprova em Required antes de chegar em Email
		values := map[string]string{"cpf": "12345678901", "nome": "Ana", "setor": "TI"}
		errs := validation.Validate(values, validation.FuncionarioRules())
		assert.Equal(t, "e-mail é obrigatório", errs["email"])
	})

	t.Run("email fora do formato", func(t *testing.T) {
		values := map[string]string{"cpf": "12345678901", "nome": "Ana", "setor": "TI", "email": "ana@empresa"}
		errs := validation.Validate(values, validation.FuncionarioRules())
		assert.Equal(t, "e-mail inválido", errs["email"])
	})
}

func TestPerguntaRules(t *testing.T) {
	t.Run("múltipla escolha exige opções", func(t *testing.T) {
		values := map[string]string{
			"texto_questao": "Como você avalia o ambiente?",
			"tipo_questao":  entities.TipoMultiplaEscolha,
		}
		errs := validation.Validate(values, validation.PerguntaRules())
		assert.Contains(t, errs, validation.OpcoesPrefix+"1")
	})

	t.Run("texto livre não exige opções", func(t *testing.T) {
		values := map[string]string{
			"texto_questao": "Como você avalia o ambiente?",
			"tipo_questao":  entities.TipoTextoLivre,
		}
		errs := validation.Validate(values, validation.PerguntaRules())
		assert.Empty(t, errs)
	})

	t.Run("texto curto demais", func(t *testing.T) {
		values := map[string]string{
			"texto_questao": "Curto",
			"tipo_questao":  entities.TipoSimNao,
		}
		errs := validation.Validate(values, validation.PerguntaRules())
		assert.Contains(t, errs, "texto_questao")
	})

	t.Run("comprimento mínimo conta caracteres e não bytes", func(t *testing.T) {
		// "Avaliação" tem 9 caracteres mas 11 bytes em UTF-8
		values := map[string]string{
			"texto_questao": "Avaliação",
			"tipo_questao":  entities.TipoTextoLivre,
		}
		errs := validation.Validate(values, validation.PerguntaRules())
		assert.Contains(t, errs, "texto_questao")

		// 10 caracteres acentuados passam
		values["texto_questao"] = "Avaliações"
		errs = validation.Validate(values, validation.PerguntaRules())
		assert.Empty(t, errs)
	})
}

func TestCollectOpcoes(t *testing.T) {
	values := map[string]string{
		"opcao_1": "Sim",
		"opcao_2": "Não",
		"opcao_4": "Talvez", // opcao_3 ausente
		"outra":   "ignorada",
	}
	assert.Equal(t, []string{"Sim", "Não", "Talvez"}, validation.CollectOpcoes(values))
}
