package entities

// Status de avaliador
const (
	AvaliadorAtivo    = "Ativo"
	AvaliadorInativo  = "Inativo"
	AvaliadorPendente = "Pendente"
)

// Avaliador representa um avaliador habilitado a conduzir entrevistas de
// desligamento. Recurso somente leitura neste cliente.
type Avaliador struct {
	ID                 int    `json:"id" example:"11"`
	Nome               string `json:"nome" example:"Carlos Lima"`
	Email              string `json:"email" example:"carlos.lima@example.com"`
	Setor              string `json:"setor" example:"Recursos Humanos"`
	CPF                string `json:"cpf" example:"98765432100"`
	Status             string `json:"status" example:"Ativo" enums:"Ativo,Inativo,Pendente"`
	TotalCertificados  int    `json:"total_certificados" example:"4"`
	TreinamentosUnicos int    `json:"treinamentos_unicos" example:"3"`
}

// SearchFields são os campos varridos pela busca textual da tela de
// avaliadores.
func (a Avaliador) SearchFields() []string {
	return []string{a.Nome, a.Email, a.Setor, a.CPF}
}

// Certificado representa um certificado de treinamento de um avaliador
type Certificado struct {
	ID          int    `json:"id" example:"301"`
	Treinamento string `json:"treinamento" example:"Condução de Entrevistas"`
	EmitidoEm   string `json:"emitido_em" example:"2025-11-03"`
}

// Treinamento é um item da lista GET /treinamentos
type Treinamento struct {
	ID   int    `json:"id" example:"5"`
	Nome string `json:"nome" example:"Condução de Entrevistas"`
}

// FuncionarioTreinamento vincula um funcionário a um treinamento
// (POST /funcionario-treinamento)
type FuncionarioTreinamento struct {
	FuncionarioCPF string `json:"funcionario_cpf" example:"12345678901"`
	TreinamentoID  int    `json:"treinamento_id" example:"5"`
}
