package apiclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"offboardadmin/internal/apiclient"
	"offboardadmin/internal/models/entities"
	"offboardadmin/internal/stub"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestClient sobe o backend simulado com os dados de seed e devolve um
// cliente apontando para ele.
func newTestClient(t *testing.T) *apiclient.Client {
	t.Helper()

	server := httptest.NewServer(stub.NewServer(stub.NewStore(), zap.NewNop(), stub.Options{}))
	t.Cleanup(server.Close)

	client, err := apiclient.New(apiclient.Config{BaseURL: server.URL}, zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestNewExigeBaseURL(t *testing.T) {
	_, err := apiclient.New(apiclient.Config{}, nil)
	assert.Error(t, err)
}

func TestListFuncionarios(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	t.Run("resposta envelopada com paginação", func(t *testing.T) {
		res, err := client.ListFuncionarios(ctx, apiclient.FuncionarioListParams{Page: 1, PerPage: 20})
		require.NoError(t, err)

		assert.Len(t, res.Items, 5)
		require.NotNil(t, res.Pagination)
		assert.Equal(t, 5, res.Pagination.Total)
		assert.Equal(t, 1, res.Pagination.TotalPages)
		assert.NoError(t, res.Pagination.Consistent())
	})

	t.Run("filtro por departamento", func(t *testing.T) {
		res, err := client.ListFuncionarios(ctx, apiclient.FuncionarioListParams{Departamento: "TI"})
		require.NoError(t, err)
		assert.Len(t, res.Items, 2)
	})

	t.Run("paginação no servidor", func(t *testing.T) {
		res, err := client.ListFuncionarios(ctx, apiclient.FuncionarioListParams{Page: 2, PerPage: 2})
		require.NoError(t, err)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, 3, res.Pagination.TotalPages)
		assert.True(t, res.Pagination.HasPrev)
		assert.True(t, res.Pagination.HasNext)
	})
}

func TestListQuestionariosArrayPuro(t *testing.T) {
	client := newTestClient(t)

	// este endpoint devolve array puro; o cliente normaliza sem descritor
	res, err := client.ListQuestionarios(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Items, 3)
	assert.Nil(t, res.Pagination)
}

func TestGetPerguntaOpcoesLegadas(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	t.Run("opcoes como string JSON", func(t *testing.T) {
		p, err := client.GetPergunta(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, entities.Opcoes{"Sim", "Parcialmente", "Não"}, p.Opcoes)
	})

	t.Run("opcoes como array", func(t *testing.T) {
		p, err := client.GetPergunta(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, entities.Opcoes{"Excelente", "Bom", "Regular", "Ruim"}, p.Opcoes)
	})

	t.Run("as duas formas aparecem na mesma listagem", func(t *testing.T) {
		res, err := client.ListPerguntas(ctx, apiclient.PerguntaListParams{})
		require.NoError(t, err)
		require.Len(t, res.Items, 5)
		for _, p := range res.Items {
			if p.TipoQuestao == entities.TipoMultiplaEscolha {
				assert.NotEmpty(t, p.Opcoes, "pergunta %d", p.CodQuestao)
			}
		}
	})
}

func TestUpdatePerguntaValidaOpcoes(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	base := entities.Pergunta{
		TextoQuestao: "Como você avalia o ambiente de trabalho?",
		TipoQuestao:  entities.TipoMultiplaEscolha,
		Categoria:    "Ambiente de Trabalho",
	}

	t.Run("uma opção só é recusada no update", func(t *testing.T) {
		p := base
		p.Opcoes = entities.Opcoes{"Bom"}
		_, err := client.UpdatePergunta(ctx, 1, p)
		var apiErr *apiclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.Conflict())
	})

	t.Run("opção duplicada é recusada no update", func(t *testing.T) {
		p := base
		p.Opcoes = entities.Opcoes{"Bom", "Bom"}
		_, err := client.UpdatePergunta(ctx, 1, p)
		var apiErr *apiclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.Conflict())
	})

	t.Run("lista válida atualiza normalmente", func(t *testing.T) {
		p := base
		p.Opcoes = entities.Opcoes{"Bom", "Ruim"}
		atualizada, err := client.UpdatePergunta(ctx, 1, p)
		require.NoError(t, err)
		assert.Equal(t, entities.Opcoes{"Bom", "Ruim"}, atualizada.Opcoes)
	})
}

func TestCicloFuncionario(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	novo := entities.Funcionario{
		CPF:   "111.222.333-44", // pontuação é removida antes do wire
		Nome:  "Gilberto Ramos",
		Email: "gilberto.ramos@example.com",
		Setor: "Comercial",
		Tipo:  entities.TipoCLT,
	}

	criado, err := client.CreateFuncionario(ctx, novo)
	require.NoError(t, err)
	assert.Equal(t, "11122233344", criado.CPF)
	assert.Equal(t, entities.StatusAtivo, criado.Status)

	// busca aceita o CPF pontuado
	lido, err := client.GetFuncionario(ctx, "111.222.333-44")
	require.NoError(t, err)
	assert.Equal(t, "Gilberto Ramos", lido.Nome)

	lido.Setor = "Financeiro"
	atualizado, err := client.UpdateFuncionario(ctx, lido.CPF, lido)
	require.NoError(t, err)
	assert.Equal(t, "Financeiro", atualizado.Setor)

	require.NoError(t, client.DeleteFuncionario(ctx, lido.CPF))

	_, err = client.GetFuncionario(ctx, lido.CPF)
	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.False(t, apiErr.Conflict())
}

func TestDeleteFuncionarioComAvaliacoes(t *testing.T) {
	client := newTestClient(t)

	// Ana Souza possui a avaliação 501; a exclusão é bloqueada
	err := client.DeleteFuncionario(context.Background(), "12345678901")
	require.Error(t, err)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Conflict())
	assert.Equal(t, "funcionário possui avaliações", apiErr.Message())

	// a mensagem do backend chega literal ao usuário
	assert.Equal(t, "funcionário possui avaliações", apiclient.UserMessage(err))
}

func TestUserMessageForaDoConflito(t *testing.T) {
	client := newTestClient(t)

	_, err := client.GetFuncionario(context.Background(), "00000000000")
	require.Error(t, err)
	// 404 não é conflito de domínio: o usuário recebe a mensagem genérica
	assert.Equal(t, apiclient.GenericFailureMessage, apiclient.UserMessage(err))
}

func TestUserMessageErroDeTransporte(t *testing.T) {
	client, err := apiclient.New(apiclient.Config{BaseURL: "http://127.0.0.1:1"}, nil)
	require.NoError(t, err)

	_, err = client.GetEstatisticas(context.Background())
	require.Error(t, err)

	// falha de transporte nunca vira APIError
	var apiErr *apiclient.APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, apiclient.GenericFailureMessage, apiclient.UserMessage(err))
}

func TestAvaliadoresSomenteLeitura(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	res, err := client.ListAvaliadores(ctx)
	require.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.Nil(t, res.Pagination)

	certs, err := client.ListCertificados(ctx, "987.654.321-00")
	require.NoError(t, err)
	assert.Len(t, certs, 2)

	// mutações são recusadas localmente, sem requisição
	_, err = client.CreateAvaliador(ctx, entities.Avaliador{Nome: "Novo"})
	assert.ErrorIs(t, err, apiclient.ErrAvaliadorReadOnly)

	_, err = client.UpdateAvaliador(ctx, "98765432100", entities.Avaliador{})
	assert.ErrorIs(t, err, apiclient.ErrAvaliadorReadOnly)

	err = client.DeleteAvaliador(ctx, "98765432100")
	assert.ErrorIs(t, err, apiclient.ErrAvaliadorReadOnly)
}

func TestDeleteQuestionarioCascata(t *testing.T) {
	client := newTestClient(t)

	// o questionário 1 tem 4 perguntas e 2 avaliações vinculadas
	res, err := client.DeleteQuestionario(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, res.AvaliacoesRemovidas)
	assert.Equal(t, 8, res.RespostasRemovidas)

	// as avaliações em cascata sumiram da listagem
	avs, err := client.ListAvaliacoes(context.Background(), apiclient.AvaliacaoListParams{})
	require.NoError(t, err)
	assert.Len(t, avs.Items, 2)
}

func TestCicloAvaliacao(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	criada, err := client.CreateAvaliacao(ctx, entities.Avaliacao{
		FuncionarioCPF: "234.567.890-12",
		QuestionarioID: 2,
		MotivoSaida:    "Proposta melhor",
	})
	require.NoError(t, err)

	// o backend preenche nome, status default e data de criação
	assert.Equal(t, "Bruno Castro", criada.FuncionarioNome)
	assert.Equal(t, entities.AvaliacaoPendente, criada.Status)
	require.NotNil(t, criada.CriadaEm)
	assert.Nil(t, criada.ConcluidaEm)

	concluida, err := client.UpdateAvaliacaoStatus(ctx, criada.ID, entities.AvaliacaoConcluida)
	require.NoError(t, err)
	assert.Equal(t, entities.AvaliacaoConcluida, concluida.Status)
	require.NotNil(t, concluida.ConcluidaEm)

	_, err = client.UpdateAvaliacaoStatus(ctx, criada.ID, "Inexistente")
	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Conflict())
}

func TestListAvaliacoesFiltros(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	porStatus, err := client.ListAvaliacoes(ctx, apiclient.AvaliacaoListParams{Status: entities.AvaliacaoConcluida})
	require.NoError(t, err)
	assert.Len(t, porStatus.Items, 2)

	porFuncionario, err := client.ListAvaliacoes(ctx, apiclient.AvaliacaoListParams{Funcionario: "345.678.901-23"})
	require.NoError(t, err)
	assert.Len(t, porFuncionario.Items, 2)
}

func TestLookups(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	deps, err := client.ListDepartamentos(ctx)
	require.NoError(t, err)
	assert.Len(t, deps, 4)

	cats, err := client.ListCategorias(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 3)

	class, err := client.ListClassificacoes(ctx)
	require.NoError(t, err)
	assert.Len(t, class, 2)

	trein, err := client.ListTreinamentos(ctx)
	require.NoError(t, err)
	assert.Len(t, trein, 2)
}

func TestCreateFuncionarioTreinamento(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.CreateFuncionarioTreinamento(ctx, entities.FuncionarioTreinamento{
		FuncionarioCPF: "12345678901",
		TreinamentoID:  5,
	})
	require.NoError(t, err)

	// o vínculo duplicado é recusado pelo backend
	err = client.CreateFuncionarioTreinamento(ctx, entities.FuncionarioTreinamento{
		FuncionarioCPF: "12345678901",
		TreinamentoID:  5,
	})
	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Conflict())
}

func TestLoadDashboard(t *testing.T) {
	client := newTestClient(t)

	d, err := client.LoadDashboard(context.Background(), 6, 10)
	require.NoError(t, err)

	assert.Equal(t, 5, d.Estatisticas.TotalFuncionarios)
	assert.Equal(t, 2, d.Estatisticas.EmProcessoSaida)
	assert.Equal(t, 1, d.Estatisticas.AvaliacoesPendentes)
	assert.Equal(t, 2, d.Estatisticas.AvaliacoesConcluidas)

	require.NotEmpty(t, d.MotivosSaida)
	assert.Equal(t, "Mudança de cidade", d.MotivosSaida[0].Motivo)
	assert.Equal(t, 2, d.MotivosSaida[0].Total)

	assert.NotEmpty(t, d.AvaliacoesPorMes)
	assert.NotEmpty(t, d.StatusAvaliacoes)
	assert.Len(t, d.AtividadesRecentes, 2)
}

func TestLoadDashboardFalhaRapida(t *testing.T) {
	cancelada := make(chan struct{})

	responde := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/dashboard/estatisticas", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"indisponível"}`))
	})
	// esta consulta só termina quando o cliente desistir dela
	mux.HandleFunc("/dashboard/motivos-saida", func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		close(cancelada)
	})
	mux.HandleFunc("/dashboard/avaliacoes-mes", responde(`[]`))
	mux.HandleFunc("/dashboard/status-avaliacoes", responde(`[]`))
	mux.HandleFunc("/dashboard/atividades-recentes", responde(`[]`))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := apiclient.New(apiclient.Config{BaseURL: server.URL}, nil)
	require.NoError(t, err)

	_, err = client.LoadDashboard(context.Background(), 6, 10)

	// o erro devolvido é o da primeira consulta que falhou
	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)

	// e a consulta irmã ainda em andamento foi cancelada
	select {
	case <-cancelada:
	case <-time.After(2 * time.Second):
		t.Fatal("a consulta em andamento não foi cancelada após a primeira falha")
	}
}
