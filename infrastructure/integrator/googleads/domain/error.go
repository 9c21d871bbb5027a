package adsdomain

// ErrorResponse representa a estrutura de erro da API de anúncios
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API de anúncios
type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// IsCredentialExpired verifica se o erro indica credencial expirada ou revogada
func (e *ErrorResponse) IsCredentialExpired() bool {
	return e.Error.Code == 401 || e.Error.Status == "UNAUTHENTICATED"
}
