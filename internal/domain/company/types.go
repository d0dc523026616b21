package company

import "errors"

var (
	ErrInvalidINN          = errors.New("inn must be a non-empty string of digits")
	ErrEmptyName           = errors.New("company name is required")
	ErrMissingOwner        = errors.New("company owner is required")
	ErrInvalidFoundingYear = errors.New("foundation year is out of range")

	ErrMissingMeasureType = errors.New("measureType is required")
	ErrMissingDescription = errors.New("description is required")
	ErrInvalidGrantYear   = errors.New("grantYear is required")
	ErrInvalidGrantAmount = errors.New("grantAmount must be positive")
	ErrMissingCompany     = errors.New("companyId is required")
	ErrMissingOperatorID  = errors.New("operator id is required")
)
