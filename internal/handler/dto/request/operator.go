package request

import (
	"time"

	"github.com/google/uuid"

	"supplier-marketplace/internal/domain/company"
)

type MeasureRequest struct {
	MeasureType string  `json:"measureType"`
	Description string  `json:"description"`
	GrantYear   Int32   `json:"grantYear"`
	GrantAmount Float64 `json:"grantAmount"`
}

type ConfirmSupportRequest struct {
	CompanyID string          `json:"companyId" binding:"required"`
	Measure   *MeasureRequest `json:"measure" binding:"required"`
}

func (r *ConfirmSupportRequest) ToDomain(operatorID uuid.UUID, now time.Time) (*company.ConfirmedGrant, error) {
	companyID, err := ParseID(r.CompanyID)
	if err != nil {
		return nil, err
	}
	if r.Measure == nil {
		return nil, company.ErrMissingMeasureType
	}
	return company.NewConfirmedGrant(companyID, company.Measure{
		MeasureType: r.Measure.MeasureType,
		Description: r.Measure.Description,
		GrantYear:   int32(r.Measure.GrantYear),
		GrantAmount: float64(r.Measure.GrantAmount),
	}, operatorID, now)
}
