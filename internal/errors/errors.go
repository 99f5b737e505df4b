package errors

import (
	"errors"
	"fmt"
	"net/http"

	"gocarne/internal/domain"
)

// AppError é a interface central para todos os erros customizados do GoCarnê.
// Ela permite que controladores e CLI acessem a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string
	Category() string
	HTTPStatus() int
	Unwrap() error
}

// GenericMessage é exibida quando o servidor não devolve um "detail" legível.
const GenericMessage = "Ocorreu um erro inesperado. Tente novamente."

// --- Erros locais (nenhuma chamada de rede acontece) ---

// ValidationError representa falhas de validação de formulário antes do envio.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NotFoundError representa a ausência de um recurso ou chave.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound }
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa um conflito de estado (e.g., email já cadastrado).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict }
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// UnauthorizedError representa credenciais inválidas ou sessão expirada.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return fmt.Sprintf("Não autorizado: %s", e.Msg) }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized }
func (e *UnauthorizedError) Unwrap() error    { return nil }

// NewUnauthorizedError cria um novo erro de autenticação.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// ForbiddenError representa um perfil sem permissão para a operação.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string    { return fmt.Sprintf("Acesso negado: %s", e.Msg) }
func (e *ForbiddenError) Category() string { return "FORBIDDEN" }
func (e *ForbiddenError) HTTPStatus() int  { return http.StatusForbidden }
func (e *ForbiddenError) Unwrap() error    { return nil }

// NewForbiddenError cria um novo erro de autorização.
func NewForbiddenError(msg string) AppError {
	return &ForbiddenError{Msg: msg}
}

// --- Erros remotos ---

// APIError é uma resposta 4xx/5xx da API. Detail traz o campo "detail" do corpo, quando houver.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("Erro da API (%d)", e.Status)
	}
	return fmt.Sprintf("Erro da API (%d): %s", e.Status, e.Detail)
}

func (e *APIError) Category() string {
	switch {
	case e.Status == http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case e.Status == http.StatusForbidden:
		return "FORBIDDEN"
	case e.Status == http.StatusNotFound:
		return "NOT_FOUND"
	case e.Status == http.StatusConflict:
		return "CONFLICT"
	case e.Status == http.StatusBadRequest, e.Status == http.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case e.Status >= 500:
		return "REMOTE_ERROR"
	default:
		return "API_ERROR"
	}
}

func (e *APIError) HTTPStatus() int { return e.Status }
func (e *APIError) Unwrap() error   { return nil }

// NewAPIError cria um erro remoto a partir do status e do "detail" devolvidos pelo servidor.
func NewAPIError(status int, detail string) AppError {
	return &APIError{Status: status, Detail: detail}
}

// TransportError representa uma falha de rede (sem resposta HTTP).
type TransportError struct {
	Msg string
	Err error
}

func (e *TransportError) Error() string    { return fmt.Sprintf("Falha de comunicação: %s", e.Msg) }
func (e *TransportError) Category() string { return "NETWORK_ERROR" }
func (e *TransportError) HTTPStatus() int  { return 0 }
func (e *TransportError) Unwrap() error    { return e.Err }

// NewTransportError encapsula o erro do http.Client.
func NewTransportError(msg string, err error) AppError {
	return &TransportError{Msg: msg, Err: err}
}

// --- Erros de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no cliente (armazenamento, decodificação).
type InternalError struct {
	Msg string
	Err error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Erro Interno: %s", e.Msg)
	}
	return fmt.Sprintf("Erro Interno: %s: %s", e.Msg, e.Err.Error())
}
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError }
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro interno.
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewStorageError é um atalho para falhas do armazenamento durável da sessão.
func NewStorageError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (storage)", msg), err)
}

// --- Tradução final ---

// Describe traduz qualquer erro para status HTTP, categoria e mensagem.
func Describe(err error) (int, string, string) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}
	return http.StatusInternalServerError, "UNKNOWN_ERROR", GenericMessage
}

// Message devolve só o texto do erro, sem o prefixo da categoria.
// Erros internos viram GenericMessage para não vazar detalhes.
func Message(err error) string {
	var (
		validation   *ValidationError
		notFound     *NotFoundError
		conflict     *ConflictError
		unauthorized *UnauthorizedError
		forbidden    *ForbiddenError
		apiErr       *APIError
	)
	switch {
	case errors.As(err, &validation):
		return validation.Msg
	case errors.As(err, &notFound):
		return notFound.Msg
	case errors.As(err, &conflict):
		return conflict.Msg
	case errors.As(err, &unauthorized):
		return unauthorized.Msg
	case errors.As(err, &forbidden):
		return forbidden.Msg
	case errors.As(err, &apiErr) && apiErr.Detail != "":
		return apiErr.Detail
	}
	return GenericMessage
}

// IsAuthFailure indica credenciais inválidas ou token expirado/inválido.
func IsAuthFailure(err error) bool {
	_, category, _ := Describe(err)
	return category == "UNAUTHORIZED"
}

// NotificationFor converte um erro em uma notificação para o usuário.
// Falhas de validação viram aviso; o resto vira erro com o "detail" do servidor quando existir.
func NotificationFor(err error) domain.Notification {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return domain.Notification{Message: validation.Msg, Type: domain.NotificationWarning}
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return domain.Notification{Message: apiErr.Detail, Type: domain.NotificationError}
	}

	var forbidden *ForbiddenError
	if errors.As(err, &forbidden) {
		return domain.Notification{Message: forbidden.Msg, Type: domain.NotificationError}
	}

	var unauthorized *UnauthorizedError
	if errors.As(err, &unauthorized) {
		return domain.Notification{Message: unauthorized.Msg, Type: domain.NotificationError}
	}

	var transport *TransportError
	if errors.As(err, &transport) {
		return domain.Notification{Message: "Não foi possível conectar ao servidor. Verifique sua conexão.", Type: domain.NotificationError}
	}

	return domain.Notification{Message: GenericMessage, Type: domain.NotificationError}
}
