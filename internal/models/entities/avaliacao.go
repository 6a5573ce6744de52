package entities

import "time"

// Status de avaliação
const (
	AvaliacaoPendente    = "Pendente"
	AvaliacaoEmAndamento = "Em Andamento"
	AvaliacaoConcluida   = "Concluída"
	AvaliacaoCancelada   = "Cancelada"
)

// Avaliacao representa a aplicação de um questionário a um funcionário em
// processo de desligamento.
type Avaliacao struct {
	ID              int        `json:"id" example:"501"`
	FuncionarioCPF  string     `json:"funcionario_cpf" example:"12345678901"`
	FuncionarioNome string     `json:"funcionario_nome,omitempty" example:"Ana Souza"`
	QuestionarioID  int        `json:"questionario_id" example:"7"`
	AvaliadorID     int        `json:"avaliador_id,omitempty" example:"11"`
	Status          string     `json:"status" example:"Pendente" enums:"Pendente,Em Andamento,Concluída,Cancelada"`
	MotivoSaida     string     `json:"motivo_saida,omitempty" example:"Proposta melhor"`
	CriadaEm        *time.Time `json:"criada_em,omitempty"`
	ConcluidaEm     *time.Time `json:"concluida_em,omitempty"`
}

// SearchFields são os campos varridos pela busca textual da tela de
// avaliações.
func (a Avaliacao) SearchFields() []string {
	return []string{a.FuncionarioNome, a.FuncionarioCPF, a.Status, a.MotivoSaida}
}
