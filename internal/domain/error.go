package domain

// ErrorResponse é o corpo de erro devolvido pela API.
// O campo "detail" é a mensagem legível exibida na notificação.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Email ou senha incorretos"`
}
