package utils

// Pagination represents pagination details
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// SuccessResponse represents a generic success response
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessPaginatedResponse represents a paginated success response
type SuccessPaginatedResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// ErrorResponse represents a generic error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

// LoginResponse represents the response returned upon successful login
type LoginResponse struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// RefreshResponse carries the newly minted access token
type RefreshResponse struct {
	Access string `json:"access"`
}
