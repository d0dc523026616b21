package request

// RegistrationRequest is the combined sign-up form. Company fields are ignored for roles that own no company.
type RegistrationRequest struct {
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Role     string  `json:"role" binding:"required"`
	INN      string  `json:"inn"`
	Name     string  `json:"name"`
	FullName *string `json:"full_name"`
	Region   *string `json:"region"`
}

// RegistrationSurveyRequest resumes a registration paused for the regional survey.
type RegistrationSurveyRequest struct {
	CompanyID string        `json:"company_id" binding:"required"`
	Email     string        `json:"email" binding:"required"`
	Password  string        `json:"password" binding:"required"`
	Survey    SurveyRequest `json:"survey"`
}
