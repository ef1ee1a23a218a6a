package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"`
}

type registerResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginResponse deliberately differs by role: admin responses carry only
// token, email and role; user responses additionally expose the profile
// fields, empty strings included.
type loginResponse struct {
	Token   string  `json:"token"`
	Email   string  `json:"email"`
	Role    string  `json:"role"`
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// forgotPasswordRequest requires the phone key to be present but allows it
// to be the empty string: users registered without a phone reset by
// submitting "", which matches their empty stored phone.
type forgotPasswordRequest struct {
	Email       string  `json:"email"       validate:"required"`
	Phone       *string `json:"phone"       validate:"required"`
	NewPassword string  `json:"newPassword" validate:"required,min=6"`
}

type forgotPasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
