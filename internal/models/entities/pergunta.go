package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status de pergunta
const (
	PerguntaAtiva   = "Ativo"
	PerguntaInativa = "Inativo"
)

// Tipos de questão
const (
	TipoMultiplaEscolha = "Múltipla Escolha"
	TipoTextoLivre      = "Texto Livre"
	TipoSimNao          = "Sim-Não"
	TipoEscala          = "Escala"
)

// Opcoes é a lista ordenada de alternativas de uma questão de múltipla
// escolha. O backend ora envia um array JSON, ora uma string contendo o
// array codificado; a normalização acontece aqui, na leitura, para que
// nenhuma tela precise tratar as duas representações.
type Opcoes []string

// UnmarshalJSON aceita ["A","B"] e "[\"A\",\"B\"]" de forma equivalente.
func (o *Opcoes) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*o = arr
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return fmt.Errorf("opcoes: unsupported representation: %w", err)
	}
	if strings.TrimSpace(encoded) == "" {
		*o = nil
		return nil
	}
	if err := json.Unmarshal([]byte(encoded), &arr); err != nil {
		return fmt.Errorf("opcoes: decoding embedded JSON string: %w", err)
	}
	*o = arr
	return nil
}

// Pergunta representa uma questão do banco de questões. CodQuestao é
// imutável após a criação; a lista de opções é substituída por inteiro na
// edição.
type Pergunta struct {
	CodQuestao   int    `json:"cod_questao" example:"42"`
	TextoQuestao string `json:"texto_questao" example:"Como você avalia o processo de desligamento?"`
	TipoQuestao  string `json:"tipo_questao" example:"Múltipla Escolha" enums:"Múltipla Escolha,Texto Livre,Sim-Não,Escala"`
	Status       string `json:"status" example:"Ativo" enums:"Ativo,Inativo"`
	Opcoes       Opcoes `json:"opcoes,omitempty"`
	Categoria    string `json:"categoria,omitempty" example:"Ambiente de Trabalho"`
}

// SearchFields são os campos varridos pela busca textual da tela de questões.
func (p Pergunta) SearchFields() []string {
	return []string{p.TextoQuestao, p.TipoQuestao, p.Categoria}
}

// Categoria é um item da lista de lookup GET /categorias
type Categoria struct {
	ID   int    `json:"id" example:"2"`
	Nome string `json:"nome" example:"Ambiente de Trabalho"`
}
