package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	reservationRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/profileservice"
	"github.com/m04kA/SMC-BarbershopService/internal/service/reservations/models"
	"github.com/m04kA/SMC-BarbershopService/pkg/ptr"
)

// Service сервис для работы с резервациями: списки и отмена
// Создание резервации живёт в отдельном usecase из-за сериализуемой транзакции
type Service struct {
	reservationRepo ReservationRepository
	barberRepo      BarberRepository
	profileClient   ProfileServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(
	reservationRepository ReservationRepository,
	barberRepository BarberRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepository,
		barberRepo:      barberRepository,
		profileClient:   profileClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetClientReservations получает историю резерваций клиента
// Клиент видит только свои резервации
func (s *Service) GetClientReservations(ctx context.Context, req *models.GetClientReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetClientReservations: client=%d, requester=%d", req.ClientID, req.RequesterUserID)

	if req.ClientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ClientID != req.RequesterUserID {
		s.logger.Warn("GetClientReservations: access denied for user=%d to reservations of client=%d",
			req.RequesterUserID, req.ClientID)
		return nil, ErrAccessDenied
	}

	reservations, err := s.reservationRepo.GetByFilter(ctx, domain.ReservationFilter{
		ClientID: ptr.Ptr(req.ClientID),
		Date:     req.Date,
	})
	if err != nil {
		s.logger.Error("GetClientReservations: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientReservations: fetched %d reservations for client=%d", len(reservations), req.ClientID)
	return models.FromDomainReservationList(reservations), nil
}

// GetBarberReservations получает резервации барбера, опционально на конкретную дату
// Доступно только самому барберу
func (s *Service) GetBarberReservations(ctx context.Context, req *models.GetBarberReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetBarberReservations: barber=%d, requester=%d", req.BarberID, req.RequesterUserID)

	if req.BarberID <= 0 {
		return nil, fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	barber, err := s.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("GetBarberReservations: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("GetBarberReservations: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetBarberReservations - repository error: %v", ErrInternal, err)
	}

	if barber.UserID != req.RequesterUserID {
		s.logger.Warn("GetBarberReservations: access denied for user=%d to reservations of barber=%d",
			req.RequesterUserID, req.BarberID)
		return nil, ErrAccessDenied
	}

	reservations, err := s.reservationRepo.GetByFilter(ctx, domain.ReservationFilter{
		BarberID:   ptr.Ptr(req.BarberID),
		Date:       req.Date,
		ActiveOnly: req.ActiveOnly,
	})
	if err != nil {
		s.logger.Error("GetBarberReservations: repository error for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetBarberReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBarberReservations: fetched %d reservations for barber=%d", len(reservations), req.BarberID)

	result := models.FromDomainReservationList(reservations)
	s.enrichClientContacts(ctx, result)
	return result, nil
}

// enrichClientContacts подтягивает контакты клиентов из сервиса профилей
// При недоступности сервиса список отдаётся без контактов
func (s *Service) enrichClientContacts(ctx context.Context, list *models.ReservationListResponse) {
	contacts := make(map[int64]*profileservice.User)

	for i := range list.Reservations {
		clientID := list.Reservations[i].ClientID

		user, ok := contacts[clientID]
		if !ok {
			var err error
			user, err = s.profileClient.GetUserWithGracefulDegradation(ctx, clientID)
			if err != nil {
				s.logger.Warn("enrichClientContacts: failed to get profile for client=%d: %v", clientID, err)
			}
			contacts[clientID] = user
		}

		if user != nil {
			list.Reservations[i].ClientName = user.FullName
			list.Reservations[i].ClientPhone = user.Phone
		}
	}
}

// Cancel отменяет резервацию
// Клиент может отменить свою резервацию (cancelled_by_client),
// барбер отменяет резервацию на себя (cancelled_by_barber).
// Прошедшие резервации не отменяются: история неизменна.
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, reservation.Status)
		return ErrCannotCancel
	}

	if isDateInPast(reservation.Date, s.timeProvider.Now()) {
		s.logger.Warn("Cancel: reservation id=%d is in the past, date=%s",
			reservationID, reservation.Date.Format(domain.DateFormat))
		return ErrPastReservation
	}

	cancelStatus, err := s.resolveCancelStatus(ctx, reservation, req)
	if err != nil {
		return err
	}

	if err := s.reservationRepo.Cancel(ctx, reservationID, cancelStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d with status=%s", reservationID, cancelStatus)
	return nil
}

// resolveCancelStatus определяет статус отмены по тому, кто отменяет
func (s *Service) resolveCancelStatus(ctx context.Context, reservation *domain.Reservation, req *models.CancelReservationRequest) (domain.ReservationStatus, error) {
	// Владелец резервации
	if reservation.ClientID == req.UserID {
		return domain.StatusCancelledByClient, nil
	}

	// Барбер, на которого сделана резервация
	barber, err := s.barberRepo.GetByID(ctx, reservation.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("resolveCancelStatus: barber id=%d not found", reservation.BarberID)
			return "", ErrAccessDenied
		}
		s.logger.Error("resolveCancelStatus: failed to get barber id=%d: %v", reservation.BarberID, err)
		return "", fmt.Errorf("%w: resolveCancelStatus - repository error: %v", ErrInternal, err)
	}

	if barber.UserID == req.UserID {
		return domain.StatusCancelledByBarber, nil
	}

	s.logger.Warn("Cancel: access denied for user=%d to reservation id=%d", req.UserID, reservation.ID)
	return "", ErrAccessDenied
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
