package entities_test

import (
	"encoding/json"
	"testing"

	"offboardadmin/internal/models/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpcoesUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    entities.Opcoes
		wantErr bool
	}{
		{
			name: "array JSON normal",
			body: `{"opcoes":["Sim","Não","Talvez"]}`,
			want: entities.Opcoes{"Sim", "Não", "Talvez"},
		},
		{
			name: "string com array codificado",
			body: `{"opcoes":"[\"Sim\",\"Não\"]"}`,
			want: entities.Opcoes{"Sim", "Não"},
		},
		{
			name: "string vazia vira nil",
			body: `{"opcoes":""}`,
			want: nil,
		},
		{
			name: "campo ausente fica nil",
			body: `{}`,
			want: nil,
		},
		{
			name:    "string que não contém um array",
			body:    `{"opcoes":"não sou json"}`,
			wantErr: true,
		},
		{
			name:    "número não é representação aceita",
			body:    `{"opcoes":42}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p entities.Pergunta
			err := json.Unmarshal([]byte(tt.body), &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Opcoes)
		})
	}
}

func TestQuestionarioDisplayName(t *testing.T) {
	// o backend ora preenche nome, ora titulo
	q := entities.Questionario{Nome: "Entrevista Padrão"}
	assert.Equal(t, "Entrevista Padrão", q.DisplayName())

	q = entities.Questionario{Titulo: "Entrevista Padrão"}
	assert.Equal(t, "Entrevista Padrão", q.DisplayName())

	q = entities.Questionario{Nome: "Nome", Titulo: "Título"}
	assert.Equal(t, "Nome", q.DisplayName())
}
