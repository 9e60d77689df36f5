package auth

// LoginInput represents the request body for user authentication.
type LoginInput struct {
	Username string `json:"username" validate:"required,max=50,min=3"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}
