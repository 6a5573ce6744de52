package entities

// Status de questionário
const (
	QuestionarioAtivo     = "Ativo"
	QuestionarioRascunho  = "Rascunho"
	QuestionarioInativo   = "Inativo"
	QuestionarioArquivado = "Arquivado"
)

// Questionario representa um formulário de avaliação montado a partir de um
// snapshot de questões selecionadas na criação. O backend ora preenche
// "nome", ora "titulo"; DisplayName resolve a inconsistência em um único
// lugar.
type Questionario struct {
	ID               int    `json:"id" example:"7"`
	Nome             string `json:"nome,omitempty" example:"Entrevista de Desligamento Padrão"`
	Titulo           string `json:"titulo,omitempty" example:"Entrevista de Desligamento Padrão"`
	Tipo             string `json:"tipo,omitempty" example:"Entrevista de saída"`
	ClassificacaoCod int    `json:"classificacao_cod,omitempty" example:"1"`
	Status           string `json:"status" example:"Ativo" enums:"Ativo,Rascunho,Inativo,Arquivado"`
	QuestoesIDs      []int  `json:"questoes_ids,omitempty"`
	TotalPerguntas   int    `json:"total_perguntas" example:"12"`
	TotalAplicacoes  int    `json:"total_aplicacoes" example:"34"`
}

// DisplayName prefere nome e cai para titulo.
func (q Questionario) DisplayName() string {
	if q.Nome != "" {
		return q.Nome
	}
	return q.Titulo
}

// SearchFields são os campos varridos pela busca textual da tela de
// questionários.
func (q Questionario) SearchFields() []string {
	return []string{q.Nome, q.Titulo, q.Tipo, q.Status}
}

// Classificacao é um item da lista de lookup GET /classificacoes
type Classificacao struct {
	Cod  int    `json:"cod" example:"1"`
	Nome string `json:"nome" example:"Desligamento voluntário"`
}
