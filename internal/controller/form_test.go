package controller_test

import (
	"context"
	"errors"
	"testing"

	"offboardadmin/internal/controller"
	"offboardadmin/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regrasFuncionario() []validation.Rule {
	return []validation.Rule{
		validation.Required("nome", "nome"),
		validation.Required("email", "e-mail"),
		validation.Email("email"),
		validation.CPF("cpf"),
	}
}

func TestFormValidacaoAbortaSemRede(t *testing.T) {
	chamadas := 0
	form := controller.NewForm(controller.FormConfig{
		Rules: regrasFuncionario(),
		Submit: func(context.Context, map[string]string) error {
			chamadas++
			return nil
		},
	})

	form.Open()
	form.Set("nome", "Ana Souza")
	form.Set("email", "ana@empresa") // sem tld
	form.Set("cpf", "123")

	err := form.Submit(context.Background())
	require.ErrorIs(t, err, controller.ErrValidation)

	// nenhuma chamada ao backend aconteceu
	assert.Zero(t, chamadas)
	assert.Equal(t, "e-mail inválido", form.FieldError("email"))
	assert.Equal(t, "CPF deve conter 11 dígitos", form.FieldError("cpf"))
	assert.True(t, form.IsOpen())
	// os valores digitados permanecem para correção
	assert.Equal(t, "Ana Souza", form.Value("nome"))
}

func TestFormSubmitComSucesso(t *testing.T) {
	var recebidos map[string]string
	recarregou := false

	form := controller.NewForm(controller.FormConfig{
		Defaults: map[string]string{"tipo": "CLT"},
		Rules:    regrasFuncionario(),
		Submit: func(_ context.Context, values map[string]string) error {
			recebidos = values
			return nil
		},
		OnSuccess: func() { recarregou = true },
	})

	form.Open()
	form.Set("nome", "Ana Souza")
	form.Set("email", "ana@empresa.com")
	form.Set("cpf", "123.456.789-01")

	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, "Ana Souza", recebidos["nome"])
	assert.Equal(t, "CLT", recebidos["tipo"])
	assert.True(t, recarregou)

	// sucesso fecha o modal e volta aos defaults
	assert.False(t, form.IsOpen())
	assert.Empty(t, form.Value("nome"))
	assert.Equal(t, "CLT", form.Value("tipo"))
	assert.Empty(t, form.SubmitError())
}

func TestFormFalhaDoBackendMantemValores(t *testing.T) {
	form := controller.NewForm(controller.FormConfig{
		Rules: regrasFuncionario(),
		Submit: func(context.Context, map[string]string) error {
			return errors.New("timeout")
		},
		Describe: func(error) string {
			return "Não foi possível concluir a operação. Tente novamente."
		},
	})

	form.Open()
	form.Set("nome", "Ana Souza")
	form.Set("email", "ana@empresa.com")
	form.Set("cpf", "12345678901")

	err := form.Submit(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, controller.ErrValidation)

	// o modal continua aberto com tudo que o usuário digitou
	assert.True(t, form.IsOpen())
	assert.Equal(t, "Ana Souza", form.Value("nome"))
	assert.Equal(t, "Não foi possível concluir a operação. Tente novamente.", form.SubmitError())
	assert.False(t, form.Submitting())
}

func TestFormOpenWithPreencheEdicao(t *testing.T) {
	form := controller.NewForm(controller.FormConfig{
		Defaults: map[string]string{"tipo": "CLT"},
		Rules:    regrasFuncionario(),
		Submit:   func(context.Context, map[string]string) error { return nil },
	})

	form.OpenWith(map[string]string{
		"nome":  "Bruno Costa",
		"email": "bruno@empresa.com",
		"cpf":   "98765432100",
		"tipo":  "PJ",
	})

	assert.True(t, form.IsOpen())
	assert.Equal(t, "Bruno Costa", form.Value("nome"))
	assert.Equal(t, "PJ", form.Value("tipo"))

	// fechar descarta os valores carregados
	form.Close()
	assert.False(t, form.IsOpen())
	assert.Empty(t, form.Value("nome"))
}
