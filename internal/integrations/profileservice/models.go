package profileservice

// User модель пользователя из сервиса профилей
type User struct {
	ID       int64  `json:"id"`
	Role     string `json:"role"` // client | barber
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// ErrorResponse модель ошибки от сервиса профилей
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
