package handler

import "github.com/qfnexora/finance-api/internal/core/domain"

// --- Request / Response types ---

type companyRequest struct {
	Name        string `json:"name"`
	Website     string `json:"website"`
	Address     string `json:"address"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	TaxID       string `json:"tax_id"`
}

type registerRequest struct {
	Firstname   string          `json:"firstname"     validate:"required"`
	Lastname    string          `json:"lastname"      validate:"required"`
	Email       string          `json:"email"         validate:"required,email"`
	Phone       string          `json:"phone"         validate:"required"`
	DateOfBirth string          `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Password    string          `json:"password"      validate:"required,min=6"`
	UserType    string          `json:"user_type"     validate:"required,oneof=individual company"`
	Company     *companyRequest `json:"company"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type verifyEmailRequest struct {
	Email   string `json:"email"    validate:"required,email"`
	OTPCode string `json:"otp_code" validate:"required,len=6"`
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	OTPCode     string `json:"otp_code"     validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type deleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

type loginResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type messageResponse struct {
	Message string `json:"message"`
}
