package company

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Measure is a support measure an operator confirms for a company.
type Measure struct {
	MeasureType string
	Description string
	GrantYear   int32
	GrantAmount float64
}

// ConfirmedGrant is an append-only audit row. Confirming the same measure twice yields two rows.
type ConfirmedGrant struct {
	id          uuid.UUID
	companyID   uuid.UUID
	measure     Measure
	confirmedBy uuid.UUID
	confirmedAt time.Time
}

func NewConfirmedGrant(companyID uuid.UUID, m Measure, operatorID uuid.UUID, now time.Time) (*ConfirmedGrant, error) {
	if companyID == uuid.Nil {
		return nil, ErrMissingCompany
	}
	if operatorID == uuid.Nil {
		return nil, ErrMissingOperatorID
	}
	m.MeasureType = strings.TrimSpace(m.MeasureType)
	m.Description = strings.TrimSpace(m.Description)
	switch {
	case m.MeasureType == "":
		return nil, ErrMissingMeasureType
	case m.Description == "":
		return nil, ErrMissingDescription
	case m.GrantYear <= 0:
		return nil, ErrInvalidGrantYear
	case m.GrantAmount <= 0:
		return nil, ErrInvalidGrantAmount
	}
	return &ConfirmedGrant{
		id:          uuid.New(),
		companyID:   companyID,
		measure:     m,
		confirmedBy: operatorID,
		confirmedAt: now,
	}, nil
}

func (g *ConfirmedGrant) ID() uuid.UUID          { return g.id }
func (g *ConfirmedGrant) CompanyID() uuid.UUID   { return g.companyID }
func (g *ConfirmedGrant) Measure() Measure       { return g.measure }
func (g *ConfirmedGrant) ConfirmedBy() uuid.UUID { return g.confirmedBy }
func (g *ConfirmedGrant) ConfirmedAt() time.Time { return g.confirmedAt }
