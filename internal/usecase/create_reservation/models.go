package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Request модель запроса на создание резервации
type Request struct {
	ClientID  int64            // ID клиента
	BarberID  int64            // ID барбера
	Date      time.Time        // Дата резервации (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданной резервацией
type Response struct {
	ID        int64            // ID созданной резервации
	ClientID  int64            // ID клиента
	BarberID  int64            // ID барбера
	Date      time.Time        // Дата резервации
	StartTime types.TimeString // Время начала
	Status    string           // Статус резервации

	// Денормализованные данные барбера
	BarberName  string
	BarberPhone string

	CreatedAt time.Time
	UpdatedAt time.Time
}
