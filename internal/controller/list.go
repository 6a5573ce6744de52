// Package controller implements the backend-agnostic screen controllers of
// the admin dashboard: paginated lists, modal forms and the two-step delete
// confirmation. Controllers carry no rendering logic; they are state
// machines a UI layer reads from.
package controller

import (
	"context"
	"sync"

	"offboardadmin/internal/models/dto"

	"go.uber.org/zap"
)

// State é o estado de carregamento de uma tela de listagem.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// GenericErrorMessage é usada quando o erro não carrega explicação do
// backend.
const GenericErrorMessage = "Não foi possível carregar os dados. Tente novamente."

// Fetcher busca uma página no backend.
type Fetcher[T any] func(ctx context.Context, page, perPage int) (dto.ListResult[T], error)

// ListConfig configura um controller de listagem.
type ListConfig[T any] struct {
	Fetch    Fetcher[T]
	IDOf     func(T) string   // identidade usada na remoção local pós-delete
	Fields   func(T) []string // campos varridos pela busca textual
	PerPage  int
	Describe func(error) string // erro → mensagem para o usuário
	Logger   *zap.Logger
}

// List gerencia o ciclo idle → loading → (ready | error) de uma tela de
// listagem, com página corrente, descritor de paginação e termo de busca.
type List[T any] struct {
	mu  sync.Mutex
	cfg ListConfig[T]

	state      State
	items      []T
	pagination *dto.Pagination
	page       int
	term       string
	errMsg     string
	generation uint64
}

// NewList cria o controller já em idle, na página 1.
func NewList[T any](cfg ListConfig[T]) *List[T] {
	if cfg.PerPage <= 0 {
		cfg.PerPage = 20
	}
	if cfg.Describe == nil {
		cfg.Describe = func(error) string { return GenericErrorMessage }
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &List[T]{cfg: cfg, state: StateIdle, page: 1}
}

// Load busca a página corrente (a primeira, na montagem da tela).
func (l *List[T]) Load(ctx context.Context) error {
	l.mu.Lock()
	page := l.page
	l.mu.Unlock()
	return l.load(ctx, page)
}

// GoToPage navega para a página n. Fora de [1, total_pages] é no-op.
func (l *List[T]) GoToPage(ctx context.Context, n int) error {
	l.mu.Lock()
	if n < 1 || (l.pagination != nil && n > l.pagination.TotalPages) {
		l.mu.Unlock()
		return nil
	}
	l.mu.Unlock()
	return l.load(ctx, n)
}

// Reload repete a busca da página corrente. Também serve de ação de retry
// do estado de erro.
func (l *List[T]) Reload(ctx context.Context) error {
	return l.Load(ctx)
}

func (l *List[T]) load(ctx context.Context, page int) error {
	l.mu.Lock()
	l.generation++
	gen := l.generation
	l.state = StateLoading
	l.errMsg = ""
	perPage := l.cfg.PerPage
	l.mu.Unlock()

	result, err := l.cfg.Fetch(ctx, page, perPage)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		// resposta atrasada de uma busca já substituída
		l.cfg.Logger.Debug("descartando resposta de página obsoleta",
			zap.Int("page", page))
		return nil
	}

	if err != nil {
		l.state = StateError
		l.errMsg = l.cfg.Describe(err)
		l.cfg.Logger.Warn("falha ao carregar página",
			zap.Int("page", page),
			zap.Error(err))
		return err
	}

	l.state = StateReady
	l.items = result.Items
	l.pagination = result.Pagination
	l.page = page
	if result.Pagination != nil {
		l.page = result.Pagination.Page
	}
	return nil
}

// SetTerm define o termo da busca textual aplicada sobre a página carregada.
func (l *List[T]) SetTerm(term string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.term = term
}

// Visible devolve os itens da página corrente após o filtro textual.
func (l *List[T]) Visible() []T {
	l.mu.Lock()
	items, term := l.items, l.term
	l.mu.Unlock()
	return Filter(items, term, l.cfg.Fields)
}

// Remove retira o item da coleção em memória por igualdade de identificador
// e ajusta os contadores locais, sem refetch. Estratégia pós-delete única em
// todas as telas.
func (l *List[T]) Remove(item T) bool {
	if l.cfg.IDOf == nil {
		return false
	}
	return l.RemoveByID(l.cfg.IDOf(item))
}

// RemoveByID retira o item com o identificador dado, se presente.
func (l *List[T]) RemoveByID(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, item := range l.items {
		if l.cfg.IDOf(item) != id {
			continue
		}
		l.items = append(l.items[:i], l.items[i+1:]...)
		if l.pagination != nil {
			patched := dto.NewPagination(l.pagination.Page, l.pagination.PerPage, l.pagination.Total-1)
			l.pagination = &patched
		}
		return true
	}
	return false
}

// State devolve o estado corrente.
func (l *List[T]) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Items devolve a página carregada, sem filtro.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items
}

// Pagination devolve o descritor corrente; nil quando o backend respondeu
// array puro.
func (l *List[T]) Pagination() *dto.Pagination {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pagination
}

// Page devolve a página corrente.
func (l *List[T]) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

// ErrorMessage devolve a mensagem do estado de erro, vazia fora dele.
func (l *List[T]) ErrorMessage() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg
}
