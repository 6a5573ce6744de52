package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// GenericFailureMessage é a mensagem exibida quando o backend não fornece
// uma explicação utilizável.
const GenericFailureMessage = "Não foi possível concluir a operação. Tente novamente."

// ErrAvaliadorReadOnly indica uma mutação sobre avaliadores, que este
// cliente não suporta. Nenhuma requisição é emitida.
var ErrAvaliadorReadOnly = errors.New("avaliadores são somente leitura neste cliente")

// APIError representa uma resposta não-2xx do backend. Falhas de transporte
// (sem resposta) nunca viram APIError; elas chegam ao chamador como o erro
// de rede encapsulado, sem status.
type APIError struct {
	Status int
	Body   []byte

	payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{Status: status, Body: body}
	// corpo de erro fora do formato esperado cai na mensagem genérica
	_ = json.Unmarshal(body, &e.payload)
	return e
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend respondeu %d: %s", e.Status, e.Message())
}

// Message devolve a explicação do backend ({error} ou {message}), com
// fallback para a mensagem genérica.
func (e *APIError) Message() string {
	if e.payload.Error != "" {
		return e.payload.Error
	}
	if e.payload.Message != "" {
		return e.payload.Message
	}
	return GenericFailureMessage
}

// Conflict reporta a regra de negócio violada no backend (400 com mensagem
// de domínio, ex.: exclusão bloqueada por registros dependentes).
func (e *APIError) Conflict() bool {
	return e.Status == http.StatusBadRequest
}

// UserMessage traduz qualquer erro do cliente em texto para o usuário:
// conflitos 400 mostram a mensagem do backend literalmente, o resto cai na
// mensagem genérica de retry.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Conflict() {
		return apiErr.Message()
	}
	return GenericFailureMessage
}
