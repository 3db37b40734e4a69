package domain

// UserData is the external-facing projection of a user, relayed to the
// customer-management API and echoed back to the caller on registration.
// It never carries the password or its hash, and unset fields are dropped
// from the serialized form instead of being emitted as null.
type UserData struct {
	ID            *uint  `json:"id,omitempty"`
	Username      string `json:"username,omitempty"`
	Email         string `json:"email,omitempty"`
	DriverLicense string `json:"driverLicense,omitempty"`
	Cellphone     string `json:"cellphone,omitempty"`
}
