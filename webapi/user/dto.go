package user

// NewUser represents the request body for account registration.
type NewUser struct {
	Username string `json:"username" validate:"required,max=50,min=3"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// ChangePasswordInput represents the request body for a password change.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72"`
}
