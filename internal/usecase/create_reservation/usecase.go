package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	reservationRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-BarbershopService/pkg/ptr"
)

// UseCase use case для создания резервации
type UseCase struct {
	barberRepo      BarberRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	barberRepository BarberRepository,
	reservationRepository ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:      barberRepository,
		reservationRepo: reservationRepository,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания резервации
//
// Проверки идут в строгом порядке:
//  1. синтаксис входных данных
//  2. дата не в прошлом
//  3. время на сегодня ещё не прошло
//  4. барбер существует
//  5. слот внутри рабочих часов барбера
//  6. слот барбера свободен
//  7. у клиента нет своей резервации на это время
//
// Проверки 4-7 и вставка идут в сериализуемой транзакции,
// частичные уникальные индексы страхуют от гонок на уровне БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: client=%d, barber=%d, date=%s, time=%s",
		req.ClientID, req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2-3. Дата и время слота не в прошлом
	now := uc.timeProvider.Now()
	if err := validateNotInPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateReservation: slot in the past: client=%d, date=%s, time=%s",
			req.ClientID, req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, err
	}

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4. Барбер существует
		barber, err := uc.barberRepo.GetByID(txCtx, req.BarberID)
		if err != nil {
			if errors.Is(err, barberRepo.ErrBarberNotFound) {
				uc.logger.Warn("CreateReservation: barber id=%d not found", req.BarberID)
				return ErrBarberNotFound
			}
			uc.logger.Error("CreateReservation: failed to get barber id=%d: %v", req.BarberID, err)
			return fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
		}

		// 5. Слот внутри рабочих часов
		if !barber.WorksAt(req.StartTime) {
			uc.logger.Warn("CreateReservation: time %s outside working hours %s-%s of barber id=%d",
				req.StartTime, barber.OpenTime, barber.CloseTime, barber.ID)
			return ErrOutsideWorkingHours
		}

		// 6. Слот барбера свободен
		// Выборка с FOR UPDATE блокирует конкурирующие записи на эту дату
		barberReservations, err := uc.reservationRepo.GetByFilter(txCtx, domain.ReservationFilter{
			BarberID:   ptr.Ptr(req.BarberID),
			Date:       ptr.Ptr(req.Date),
			ActiveOnly: true,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get barber reservations: %v", err)
			return fmt.Errorf("%w: failed to get barber reservations: %v", ErrInternal, err)
		}
		if hasSlotConflict(barberReservations, req.StartTime) {
			uc.logger.Warn("CreateReservation: slot taken: barber=%d, date=%s, time=%s",
				req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotTaken
		}

		// 7. У клиента нет своей резервации на это время
		clientReservations, err := uc.reservationRepo.GetByFilter(txCtx, domain.ReservationFilter{
			ClientID:   ptr.Ptr(req.ClientID),
			Date:       ptr.Ptr(req.Date),
			ActiveOnly: true,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get client reservations: %v", err)
			return fmt.Errorf("%w: failed to get client reservations: %v", ErrInternal, err)
		}
		if hasSlotConflict(clientReservations, req.StartTime) {
			uc.logger.Warn("CreateReservation: client double booking: client=%d, date=%s, time=%s",
				req.ClientID, req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrClientSlotTaken
		}

		// Создаем резервацию с денормализацией данных барбера
		reservation := &domain.Reservation{
			ClientID:    req.ClientID,
			BarberID:    req.BarberID,
			Date:        req.Date,
			StartTime:   req.StartTime,
			Status:      domain.StatusActive,
			BarberName:  barber.FullName,
			BarberPhone: barber.Phone,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			// Конфликт уникального индекса: гонка, которую не поймали проверки выше
			switch {
			case errors.Is(err, reservationRepo.ErrSlotTaken):
				uc.logger.Warn("CreateReservation: unique index conflict on barber slot: barber=%d", req.BarberID)
				return ErrSlotTaken
			case errors.Is(err, reservationRepo.ErrClientSlotTaken):
				uc.logger.Warn("CreateReservation: unique index conflict on client slot: client=%d", req.ClientID)
				return ErrClientSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		ClientID:    result.ClientID,
		BarberID:    result.BarberID,
		Date:        result.Date,
		StartTime:   result.StartTime,
		Status:      string(result.Status),
		BarberName:  result.BarberName,
		BarberPhone: result.BarberPhone,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
