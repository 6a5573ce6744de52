// Package stub implements an in-memory double of the offboarding REST
// backend. It exists for integration tests and for local development of the
// dashboard frontend; it is not the production backend. The observed quirks
// of the real API are reproduced on purpose: some list endpoints answer a
// bare array, others an envelope with pagination, and one seeded question
// still carries opcoes as a JSON-encoded string.
package stub

import (
	"sort"
	"sync"
	"time"

	"offboardadmin/internal/models/dto"
	"offboardadmin/internal/models/entities"
)

// Store guarda o estado em memória do backend simulado.
type Store struct {
	mu sync.Mutex

	funcionarios  map[string]entities.Funcionario
	perguntas     map[int]entities.Pergunta
	questionarios map[int]entities.Questionario
	avaliadores   map[string]entities.Avaliador
	avaliacoes    map[int]entities.Avaliacao
	certificados  map[string][]entities.Certificado

	departamentos  []entities.Departamento
	categorias     []entities.Categoria
	classificacoes []entities.Classificacao
	treinamentos   []entities.Treinamento
	vinculos       []entities.FuncionarioTreinamento

	atividades []dto.Atividade

	// perguntas que ainda chegam com opcoes serializadas como string JSON
	legacyOpcoes map[int]bool

	nextPergunta     int
	nextQuestionario int
	nextAvaliacao    int
}

// NewStore cria o estado inicial com dados de exemplo realistas.
func NewStore() *Store {
	now := time.Now().UTC()
	mes := func(offset int) *time.Time {
		t := now.AddDate(0, -offset, -3)
		return &t
	}

	s := &Store{
		funcionarios: map[string]entities.Funcionario{
			"12345678901": {CPF: "12345678901", Nome: "Ana Souza", Email: "ana.souza@example.com", Setor: "Financeiro", CTPS: "1234567", Tipo: entities.TipoCLT, Status: entities.StatusProcessoSaida},
			"23456789012": {CPF: "23456789012", Nome: "Bruno Castro", Email: "bruno.castro@example.com", Setor: "TI", Tipo: entities.TipoPJ, Status: entities.StatusAtivo},
			"34567890123": {CPF: "34567890123", Nome: "Carla Dias", Email: "carla.dias@example.com", Setor: "Comercial", Tipo: entities.TipoCLT, Status: entities.StatusDesligado},
			"45678901234": {CPF: "45678901234", Nome: "Diego Nunes", Email: "diego.nunes@example.com", Setor: "TI", Tipo: entities.TipoEstagiario, Status: entities.StatusAtivo},
			"56789012345": {CPF: "56789012345", Nome: "Elisa Prado", Email: "elisa.prado@example.com", Setor: "Recursos Humanos", Tipo: entities.TipoTerceirizado, Status: entities.StatusProcessoSaida},
		},
		perguntas: map[int]entities.Pergunta{
			1: {CodQuestao: 1, TextoQuestao: "Como você avalia o ambiente de trabalho?", TipoQuestao: entities.TipoMultiplaEscolha, Status: "Ativo", Opcoes: entities.Opcoes{"Excelente", "Bom", "Regular", "Ruim"}, Categoria: "Ambiente de Trabalho"},
			2: {CodQuestao: 2, TextoQuestao: "Descreva os principais motivos da sua saída.", TipoQuestao: entities.TipoTextoLivre, Status: "Ativo", Categoria: "Motivos de Saída"},
			3: {CodQuestao: 3, TextoQuestao: "Você recomendaria a empresa a um colega?", TipoQuestao: entities.TipoSimNao, Status: "Ativo", Categoria: "Recomendação"},
			4: {CodQuestao: 4, TextoQuestao: "De 1 a 10, como avalia sua liderança direta?", TipoQuestao: entities.TipoEscala, Status: "Ativo", Categoria: "Liderança"},
			5: {CodQuestao: 5, TextoQuestao: "O processo de integração atendeu às expectativas?", TipoQuestao: entities.TipoMultiplaEscolha, Status: "Inativo", Opcoes: entities.Opcoes{"Sim", "Parcialmente", "Não"}, Categoria: "Integração"},
		},
		questionarios: map[int]entities.Questionario{
			1: {ID: 1, Nome: "Entrevista de Desligamento Padrão", Tipo: "Entrevista de saída", ClassificacaoCod: 1, Status: entities.QuestionarioAtivo, QuestoesIDs: []int{1, 2, 3, 4}, TotalPerguntas: 4, TotalAplicacoes: 3},
			2: {ID: 2, Titulo: "Avaliação Rápida de Saída", Tipo: "Formulário curto", ClassificacaoCod: 2, Status: entities.QuestionarioRascunho, QuestoesIDs: []int{2, 3}, TotalPerguntas: 2, TotalAplicacoes: 0},
			3: {ID: 3, Nome: "Pesquisa de Clima na Saída", Tipo: "Pesquisa", ClassificacaoCod: 1, Status: entities.QuestionarioArquivado, QuestoesIDs: []int{1, 4}, TotalPerguntas: 2, TotalAplicacoes: 5},
		},
		avaliadores: map[string]entities.Avaliador{
			"98765432100": {ID: 11, Nome: "Carlos Lima", Email: "carlos.lima@example.com", Setor: "Recursos Humanos", CPF: "98765432100", Status: entities.AvaliadorAtivo, TotalCertificados: 2, TreinamentosUnicos: 2},
			"87654321099": {ID: 12, Nome: "Fernanda Melo", Email: "fernanda.melo@example.com", Setor: "Recursos Humanos", CPF: "87654321099", Status: entities.AvaliadorPendente, TotalCertificados: 1, TreinamentosUnicos: 1},
		},
		certificados: map[string][]entities.Certificado{
			"98765432100": {
				{ID: 301, Treinamento: "Condução de Entrevistas", EmitidoEm: "2025-11-03"},
				{ID: 302, Treinamento: "LGPD para RH", EmitidoEm: "2026-02-17"},
			},
			"87654321099": {
				{ID: 303, Treinamento: "Condução de Entrevistas", EmitidoEm: "2026-01-22"},
			},
		},
		avaliacoes: map[int]entities.Avaliacao{
			501: {ID: 501, FuncionarioCPF: "12345678901", FuncionarioNome: "Ana Souza", QuestionarioID: 1, AvaliadorID: 11, Status: entities.AvaliacaoPendente, MotivoSaida: "Proposta melhor", CriadaEm: mes(0)},
			502: {ID: 502, FuncionarioCPF: "34567890123", FuncionarioNome: "Carla Dias", QuestionarioID: 1, AvaliadorID: 11, Status: entities.AvaliacaoConcluida, MotivoSaida: "Mudança de cidade", CriadaEm: mes(1), ConcluidaEm: mes(0)},
			503: {ID: 503, FuncionarioCPF: "56789012345", FuncionarioNome: "Elisa Prado", QuestionarioID: 3, AvaliadorID: 12, Status: entities.AvaliacaoEmAndamento, MotivoSaida: "Insatisfação salarial", CriadaEm: mes(1)},
			504: {ID: 504, FuncionarioCPF: "34567890123", FuncionarioNome: "Carla Dias", QuestionarioID: 3, AvaliadorID: 12, Status: entities.AvaliacaoConcluida, MotivoSaida: "Mudança de cidade", CriadaEm: mes(2), ConcluidaEm: mes(2)},
		},
		departamentos: []entities.Departamento{
			{ID: 1, Nome: "Financeiro"},
			{ID: 2, Nome: "TI"},
			{ID: 3, Nome: "Comercial"},
			{ID: 4, Nome: "Recursos Humanos"},
		},
		categorias: []entities.Categoria{
			{ID: 1, Nome: "Ambiente de Trabalho"},
			{ID: 2, Nome: "Motivos de Saída"},
			{ID: 3, Nome: "Liderança"},
		},
		classificacoes: []entities.Classificacao{
			{Cod: 1, Nome: "Desligamento voluntário"},
			{Cod: 2, Nome: "Desligamento involuntário"},
		},
		treinamentos: []entities.Treinamento{
			{ID: 5, Nome: "Condução de Entrevistas"},
			{ID: 6, Nome: "LGPD para RH"},
		},
		legacyOpcoes:     map[int]bool{5: true},
		nextPergunta:     6,
		nextQuestionario: 4,
		nextAvaliacao:    505,
	}

	s.atividades = []dto.Atividade{
		{Tipo: "avaliacao_concluida", Descricao: "Avaliação de Carla Dias concluída", Data: now.AddDate(0, 0, -2)},
		{Tipo: "funcionario_cadastrado", Descricao: "Funcionário Diego Nunes cadastrado", Data: now.AddDate(0, 0, -5)},
	}
	return s
}

func (s *Store) registra(tipo, descricao string) {
	s.atividades = append(s.atividades, dto.Atividade{
		Tipo:      tipo,
		Descricao: descricao,
		Data:      time.Now().UTC(),
	})
}

func sortedFuncionarios(m map[string]entities.Funcionario) []entities.Funcionario {
	out := make([]entities.Funcionario, 0, len(m))
	for _, f := range m {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CPF < out[j].CPF })
	return out
}

func sortedPerguntas(m map[int]entities.Pergunta) []entities.Pergunta {
	out := make([]entities.Pergunta, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CodQuestao < out[j].CodQuestao })
	return out
}

func sortedQuestionarios(m map[int]entities.Questionario) []entities.Questionario {
	out := make([]entities.Questionario, 0, len(m))
	for _, q := range m {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedAvaliadores(m map[string]entities.Avaliador) []entities.Avaliador {
	out := make([]entities.Avaliador, 0, len(m))
	for _, a := range m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedAvaliacoes(m map[int]entities.Avaliacao) []entities.Avaliacao {
	out := make([]entities.Avaliacao, 0, len(m))
	for _, a := range m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// paginate recorta a página pedida e monta o descritor correspondente.
func paginate[T any](items []T, page, perPage int) ([]T, dto.Pagination) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	pag := dto.NewPagination(page, perPage, len(items))

	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}, pag
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], pag
}
