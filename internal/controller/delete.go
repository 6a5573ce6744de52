package controller

import (
	"context"
	"sync"
)

// DeleteSuccessMessage é a notificação padrão de exclusão bem-sucedida.
const DeleteSuccessMessage = "Registro excluído com sucesso."

// Delete implementa a exclusão em duas fases: selecionar o alvo abre o modal
// de confirmação; confirmar chama o backend. Cancelar em qualquer ponto
// limpa o alvo sem chamada de rede.
type Delete[T any] struct {
	mu sync.Mutex

	list     *List[T]
	remove   func(ctx context.Context, target T) error
	describe func(error) string

	target *T
	notice string
	errMsg string
}

// NewDelete cria o fluxo vinculado à lista que exibirá o resultado. describe
// decide a mensagem de falha (conflitos 400 mostram o texto do backend
// literalmente; o resto recebe a mensagem genérica de retry).
func NewDelete[T any](list *List[T], remove func(ctx context.Context, target T) error, describe func(error) string) *Delete[T] {
	if describe == nil {
		describe = func(error) string { return GenericErrorMessage }
	}
	return &Delete[T]{list: list, remove: remove, describe: describe}
}

// SelectTarget guarda o alvo e abre a confirmação.
func (d *Delete[T]) SelectTarget(item T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.target = &item
	d.notice = ""
	d.errMsg = ""
}

// Target devolve o alvo pendente, se houver.
func (d *Delete[T]) Target() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.target == nil {
		var zero T
		return zero, false
	}
	return *d.target, true
}

// Cancel limpa o alvo pendente sem chamar o backend.
func (d *Delete[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.target = nil
	d.errMsg = ""
}

// Confirm chama o endpoint de exclusão do alvo pendente. Sucesso remove o
// item da lista em memória, registra a notificação e limpa o alvo; falha
// mantém o alvo e o item na lista.
func (d *Delete[T]) Confirm(ctx context.Context) error {
	d.mu.Lock()
	if d.target == nil {
		d.mu.Unlock()
		return nil
	}
	target := *d.target
	d.mu.Unlock()

	err := d.remove(ctx, target)

	d.mu.Lock()
	defer d.mu.Unlock()

	if err != nil {
		d.errMsg = d.describe(err)
		return err
	}

	if d.list != nil {
		d.list.Remove(target)
	}
	d.notice = DeleteSuccessMessage
	d.target = nil
	d.errMsg = ""
	return nil
}

// Notice devolve a última notificação de sucesso.
func (d *Delete[T]) Notice() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.notice
}

// ErrorMessage devolve a mensagem da última falha de exclusão.
func (d *Delete[T]) ErrorMessage() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errMsg
}
