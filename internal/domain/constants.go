package domain

// Default schedule values
const (
	DefaultHaircutDurationMinutes = 30
)

// Business validation constants
const (
	MinHaircutDurationMinutes = 15
	MaxHaircutDurationMinutes = 120
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Role названия ролей, приходящих от identity-провайдера
type Role string

const (
	RoleClient Role = "client"
	RoleBarber Role = "barber"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleClient || r == RoleBarber
}

// ActiveStatuses список статусов активных резерваций
// Используется при фильтрации для проверок двойного бронирования
var ActiveStatuses = []ReservationStatus{
	StatusActive,
}

// InactiveStatuses список статусов отменённых резерваций
var InactiveStatuses = []ReservationStatus{
	StatusCancelledByClient,
	StatusCancelledByBarber,
}
