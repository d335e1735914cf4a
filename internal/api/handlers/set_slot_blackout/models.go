package set_slot_blackout

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/service/availability/models"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// SetSlotBlackoutRequest HTTP request model
type SetSlotBlackoutRequest struct {
	Date          string `json:"date"` // "2026-09-10"
	Time          string `json:"time"` // "14:00"
	IsUnavailable bool   `json:"isUnavailable"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetSlotBlackoutRequest) ToServiceRequest(userID int64) (*models.SetSlotBlackoutRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &models.SetSlotBlackoutRequest{
		RequesterUserID: userID,
		Date:            date,
		StartTime:       startTime,
		IsUnavailable:   r.IsUnavailable,
	}, nil
}
