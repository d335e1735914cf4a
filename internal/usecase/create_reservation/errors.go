package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrPastDate возвращается, когда дата резервации в прошлом
	ErrPastDate = errors.New("create_reservation: date is in the past")

	// ErrPastTime возвращается, когда слот на сегодня уже прошёл
	ErrPastTime = errors.New("create_reservation: time slot has already passed")

	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("create_reservation: barber not found")

	// ErrOutsideWorkingHours возвращается, когда слот вне рабочих часов барбера
	ErrOutsideWorkingHours = errors.New("create_reservation: time is outside working hours")

	// ErrSlotTaken возвращается, когда слот барбера уже занят
	ErrSlotTaken = errors.New("create_reservation: slot is already taken")

	// ErrClientSlotTaken возвращается, когда у клиента уже есть резервация на это время
	ErrClientSlotTaken = errors.New("create_reservation: client already has a reservation at this time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
