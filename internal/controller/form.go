package controller

import (
	"context"
	"errors"
	"sync"

	"offboardadmin/internal/validation"
)

// ErrValidation sinaliza que a submissão foi abortada pelas regras locais;
// nenhuma chamada de rede aconteceu.
var ErrValidation = errors.New("formulário contém erros de validação")

// SubmitFunc envia os valores validados ao backend (create ou update).
type SubmitFunc func(ctx context.Context, values map[string]string) error

// FormConfig configura um controller de formulário modal.
type FormConfig struct {
	Defaults  map[string]string
	Rules     []validation.Rule
	Submit    SubmitFunc
	OnSuccess func()             // tipicamente "recarregar a lista"
	Describe  func(error) string // erro de submissão → mensagem para o usuário
}

// Form gerencia o estado de um formulário modal de criação/edição: valores
// por campo, erros por campo e o ciclo de submissão.
type Form struct {
	mu  sync.Mutex
	cfg FormConfig

	values     map[string]string
	errors     map[string]string
	submitting bool
	open       bool
	submitErr  string
}

// NewForm cria o controller com o formulário fechado.
func NewForm(cfg FormConfig) *Form {
	if cfg.Describe == nil {
		cfg.Describe = func(error) string { return GenericErrorMessage }
	}
	f := &Form{cfg: cfg}
	f.reset()
	return f
}

func (f *Form) reset() {
	f.values = make(map[string]string, len(f.cfg.Defaults))
	for k, v := range f.cfg.Defaults {
		f.values[k] = v
	}
	f.errors = make(map[string]string)
	f.submitErr = ""
}

// Open abre o modal de criação com os valores default.
func (f *Form) Open() {
	f.OpenWith(nil)
}

// OpenWith abre o modal de edição pré-preenchido com os valores da entidade.
func (f *Form) OpenWith(values map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
	for k, v := range values {
		f.values[k] = v
	}
	f.open = true
}

// Close fecha o modal descartando o estado preenchido.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
	f.open = false
}

// Set grava o valor corrente de um campo.
func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[field] = value
}

// Value lê o valor corrente de um campo.
func (f *Form) Value(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[field]
}

// Values devolve uma cópia dos valores correntes.
func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Errors devolve o mapa campo → mensagem da última validação reprovada.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// FieldError devolve a mensagem de um campo reprovado, vazia quando passou.
func (f *Form) FieldError(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors[field]
}

// Submitting informa se há uma submissão em andamento.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// IsOpen informa se o modal está aberto.
func (f *Form) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// SubmitError devolve a mensagem da última falha de submissão no backend.
func (f *Form) SubmitError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitErr
}

// Submit valida e envia o formulário. A validação roda sincronamente: se
// qualquer campo reprova, a submissão é abortada com ErrValidation e nada
// vai à rede. Sucesso reseta os campos, fecha o modal e dispara OnSuccess;
// falha do backend mantém o modal aberto com os valores intactos.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil
	}

	errs := validation.Validate(f.values, f.cfg.Rules)
	if len(errs) > 0 {
		f.errors = errs
		f.mu.Unlock()
		return ErrValidation
	}

	f.errors = make(map[string]string)
	f.submitting = true
	snapshot := make(map[string]string, len(f.values))
	for k, v := range f.values {
		snapshot[k] = v
	}
	f.mu.Unlock()

	err := f.cfg.Submit(ctx, snapshot)

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.submitErr = f.cfg.Describe(err)
		f.mu.Unlock()
		return err
	}
	f.reset()
	f.open = false
	f.mu.Unlock()

	if f.cfg.OnSuccess != nil {
		f.cfg.OnSuccess()
	}
	return nil
}
