package domain

// LoginRequest carries the credentials presented at login. The plaintext
// password is transient: never persisted, never logged.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest carries the data needed to create a platform user and the
// matching customer record in the rental system.
type RegisterRequest struct {
	Username      string `json:"username" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	DriverLicense string `json:"driverLicense" validate:"required"`
	Cellphone     string `json:"cellphone" validate:"required"`
}
