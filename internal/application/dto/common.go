package dto

// Envelope del API: {status, content: {data, meta?}} en éxito,
// {status: false, error: {message}} en fallo.

// Response cuerpo de éxito.
type Response struct {
	Status  bool     `json:"status"`
	Content *Content `json:"content,omitempty"`
}

// Content data y meta opcionales de una respuesta exitosa.
type Content struct {
	Meta interface{} `json:"meta,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

// ListMeta metadatos de listados. No hay paginación: siempre una sola página.
type ListMeta struct {
	Total int `json:"total"`
	Pages int `json:"pages"`
	Page  int `json:"page"`
}

// AuthMeta metadatos de signup/signin con el token de acceso.
type AuthMeta struct {
	AccessToken string `json:"access_token"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Status bool      `json:"status"`
	Error  ErrorBody `json:"error"`
}

// ErrorBody detalle del error.
type ErrorBody struct {
	Message string `json:"message"`
}

// OK arma una respuesta exitosa con data.
func OK(data interface{}) Response {
	return Response{Status: true, Content: &Content{Data: data}}
}

// OKWithMeta arma una respuesta exitosa con data y meta.
func OKWithMeta(data, meta interface{}) Response {
	return Response{Status: true, Content: &Content{Data: data, Meta: meta}}
}

// OKList arma una respuesta de listado con meta {total, pages: 1, page: 1}.
func OKList(data interface{}, total int) Response {
	return OKWithMeta(data, ListMeta{Total: total, Pages: 1, Page: 1})
}

// Fail arma una respuesta de error con el mensaje dado.
func Fail(message string) ErrorResponse {
	return ErrorResponse{Status: false, Error: ErrorBody{Message: message}}
}
