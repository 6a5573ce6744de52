// Package entities holds the domain objects owned by the offboarding
// backend. The client keeps only transient, re-fetchable copies of them.
package entities

// Tipos de contrato aceitos pelo backend
const (
	TipoCLT          = "CLT"
	TipoPJ           = "PJ"
	TipoEstagiario   = "Estagiário"
	TipoTerceirizado = "Terceirizado"
)

// Status de funcionário
const (
	StatusAtivo         = "Ativo"
	StatusProcessoSaida = "Processo de Saída"
	StatusDesligado     = "Desligado"
)

// Funcionario representa um funcionário em processo de avaliação de
// desligamento. CPF é o identificador primário e é imutável após o cadastro.
type Funcionario struct {
	CPF    string `json:"cpf" example:"12345678901"`
	Nome   string `json:"nome" example:"Ana Souza"`
	Email  string `json:"email" example:"ana.souza@example.com"`
	Setor  string `json:"setor" example:"Financeiro"`
	CTPS   string `json:"ctps,omitempty" example:"1234567"`
	Tipo   string `json:"tipo" example:"CLT" enums:"CLT,PJ,Estagiário,Terceirizado"`
	Status string `json:"status" example:"Ativo" enums:"Ativo,Processo de Saída,Desligado"`
}

// SearchFields são os campos varridos pela busca textual da tela de
// funcionários.
func (f Funcionario) SearchFields() []string {
	return []string{f.Nome, f.Email, f.Setor, f.CPF}
}

// Departamento é um item da lista de lookup GET /departamentos
type Departamento struct {
	ID   int    `json:"id" example:"3"`
	Nome string `json:"nome" example:"Financeiro"`
}
