package auth_dto

type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=64"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginUserRequest struct {
	// Identifier akzeptiert E-Mail oder Benutzername.
	Identifier string `json:"identifier" validate:"required,min=3,max=255"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
}

// LoginMetadata wird aus Request-Headern befüllt und landet im Session-Tracker.
type LoginMetadata struct {
	Device    string
	UserAgent string
	IP        string
}
