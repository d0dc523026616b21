package response

import (
	"github.com/google/uuid"

	"supplier-marketplace/internal/usecase/registration"
)

// RegistrationResponse reports where the saga stopped. Token is set once the user is logged in;
// SurveyRequired means the caller must post the survey to finish.
type RegistrationResponse struct {
	Message        string           `json:"message"`
	State          string           `json:"state"`
	SurveyRequired bool             `json:"survey_required"`
	User           *UserResponse    `json:"user,omitempty"`
	CompanyID      *uuid.UUID       `json:"company_id,omitempty"`
	Token          string           `json:"token,omitempty"`
	Company        *CompanyResponse `json:"company,omitempty"`
}

func FromRegistrationResult(message string, r *registration.Result) (*RegistrationResponse, error) {
	res := &RegistrationResponse{
		Message:        message,
		State:          string(r.State),
		SurveyRequired: r.Pending != nil,
	}
	if r.User != nil {
		res.User = &UserResponse{ID: r.User.ID, Email: r.User.Email, Role: r.User.Role, CreatedAt: r.User.CreatedAt}
	}
	if r.Company != nil {
		c, err := FromCompanyView(r.Company)
		if err != nil {
			return nil, err
		}
		res.Company = c
		res.CompanyID = &r.Company.ID
	}
	if r.Login != nil {
		res.Token = r.Login.Token
	}
	return res, nil
}
