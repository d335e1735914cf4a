package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда резервация не найдена
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotTaken возвращается, когда слот барбера уже занят активной резервацией
	// Ловится по частичному уникальному индексу uq_reservations_barber_slot
	ErrSlotTaken = errors.New("reservation.repository: barber slot already taken")

	// ErrClientSlotTaken возвращается, когда у клиента уже есть активная резервация на этот слот
	// Ловится по частичному уникальному индексу uq_reservations_client_slot
	ErrClientSlotTaken = errors.New("reservation.repository: client already has a reservation for this slot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
