package proto

type Empty struct{}

type SignupRequest struct {
	Role           string `json:"role"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Language       string `json:"language,omitempty"`
	NativeLanguage string `json:"nativeLanguage,omitempty"`
}

type SignupResponse struct {
	UserId    string `json:"userId"`
	UserEmail string `json:"userEmail"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type SendResetPasswordEmailRequest struct {
	Email    string `json:"email"`
	Language string `json:"language,omitempty"`
}

type UpdatePasswordRequest struct {
	ResetToken string `json:"resetToken"`
	Password   string `json:"password"`
	Language   string `json:"language,omitempty"`
}

type ConfirmEmailRequest struct {
	ConfirmToken string `json:"confirmToken"`
}

type GoogleAuthRequest struct {
	Ticket string `json:"ticket"`
}

type Session struct {
	UserId       string `json:"userId"`
	Role         string `json:"role"`
	IsFirstLogin bool   `json:"isFirstLogin"`
	ExpiresAt    int64  `json:"expiresAt"`
}
