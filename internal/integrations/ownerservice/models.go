package ownerservice

// CalendarOwner публичная модель владельца календаря из OwnerService.
// OwnerService отдаёт публичную проекцию без учётных данных.
type CalendarOwner struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
}

// ErrorResponse модель ошибки от OwnerService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
