// Package validation implements the client-local field rules that block a
// form submission before any network call happens.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"offboardadmin/internal/models/entities"
)

var (
	nonDigits  = regexp.MustCompile(`\D`)
	emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// NormalizeCPF remove tudo que não é dígito. Idempotente.
func NormalizeCPF(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ValidCPF exige exatamente 11 dígitos após a normalização.
func ValidCPF(s string) bool {
	return len(NormalizeCPF(s)) == 11
}

// ValidEmail valida o formato local@dominio.tld.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidateOpcoes valida a lista de alternativas de uma questão de múltipla
// escolha: de 2 a 6 entradas não vazias após trim, sem duplicatas.
func ValidateOpcoes(opcoes []string) error {
	seen := make(map[string]bool, len(opcoes))
	filled := 0
	for _, o := range opcoes {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if seen[o] {
			return fmt.Errorf("opção duplicada: %q", o)
		}
		seen[o] = true
		filled++
	}
	if filled < 2 {
		return fmt.Errorf("informe pelo menos 2 opções")
	}
	if filled > 6 {
		return fmt.Errorf("informe no máximo 6 opções")
	}
	return nil
}

// Rule valida um campo do formulário. Check recebe todos os valores do
// formulário e devolve a mensagem de erro, ou vazio quando o campo passa.
type Rule struct {
	Field string
	Check func(values map[string]string) string
}

// Validate aplica as regras e devolve o mapa campo → mensagem apenas para os
// campos reprovados.
func Validate(values map[string]string, rules []Rule) map[string]string {
	errs := make(map[string]string)
	for _, r := range rules {
		if _, taken := errs[r.Field]; taken {
			continue
		}
		if msg := r.Check(values); msg != "" {
			errs[r.Field] = msg
		}
	}
	return errs
}

// Required reprova valores vazios após trim.
func Required(field, label string) Rule {
	return Rule{Field: field, Check: func(values map[string]string) string {
		if strings.TrimSpace(values[field]) == "" {
			return label + " é obrigatório"
		}
		return ""
	}}
}

// MinLen reprova valores com menos de n caracteres após trim. Conta runas,
// não bytes: texto em português carrega acentos multi-byte.
func MinLen(field, label string, n int) Rule {
	return Rule{Field: field, Check: func(values map[string]string) string {
		if utf8.RuneCountInString(strings.TrimSpace(values[field])) < n {
			return fmt.Sprintf("%s deve ter pelo menos %d caracteres", label, n)
		}
		return ""
	}}
}

// Email reprova endereços fora do formato local@dominio.tld.
func Email(field string) Rule {
	return Rule{Field: field, Check: func(values map[string]string) string {
		if !ValidEmail(strings.TrimSpace(values[field])) {
			return "e-mail inválido"
		}
		return ""
	}}
}

// CPF reprova identificadores que não reduzem a 11 dígitos.
func CPF(field string) Rule {
	return Rule{Field: field, Check: func(values map[string]string) string {
		if !ValidCPF(values[field]) {
			return "CPF deve conter 11 dígitos"
		}
		return ""
	}}
}

// OpcoesPrefix é o prefixo dos campos de alternativa no formulário de questão.
const OpcoesPrefix = "opcao_"

// CollectOpcoes extrai, em ordem, os valores opcao_1..opcao_6 do formulário.
func CollectOpcoes(values map[string]string) []string {
	opcoes := make([]string, 0, 6)
	for i := 1; i <= 6; i++ {
		if v, ok := values[fmt.Sprintf("%s%d", OpcoesPrefix, i)]; ok {
			opcoes = append(opcoes, v)
		}
	}
	return opcoes
}

// Opcoes valida as alternativas quando o tipo da questão é múltipla escolha.
func Opcoes(typeField string) Rule {
	return Rule{Field: OpcoesPrefix + "1", Check: func(values map[string]string) string {
		if values[typeField] != entities.TipoMultiplaEscolha {
			return ""
		}
		if err := ValidateOpcoes(CollectOpcoes(values)); err != nil {
			return err.Error()
		}
		return ""
	}}
}

// FuncionarioRules são as regras do formulário de cadastro/edição de
// funcionário.
func FuncionarioRules() []Rule {
	return []Rule{
		Required("nome", "nome"),
		Required("email", "e-mail"),
		Email("email"),
		Required("setor", "setor"),
		CPF("cpf"),
	}
}

// PerguntaRules são as regras do formulário de questão.
func PerguntaRules() []Rule {
	return []Rule{
		Required("texto_questao", "texto da questão"),
		MinLen("texto_questao", "texto da questão", 10),
		Required("tipo_questao", "tipo da questão"),
		Opcoes("tipo_questao"),
	}
}

// QuestionarioRules são as regras do formulário de questionário.
func QuestionarioRules() []Rule {
	return []Rule{
		Required("nome", "nome"),
		Required("classificacao_cod", "classificação"),
	}
}
