package domain

// UserAccount is one entry of the device-scoped, append-only account list.
// The JSON tags match the registration endpoint's field names.
type UserAccount struct {
	Name     string `json:"name"`
	Phone    string `json:"phone_no"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
