package auth

// OTPRequest represents the request body for requesting an OTP
type OTPRequest struct {
	Phone string `json:"phone" validate:"required,min=10,max=15"`
}

// OTPVerifyRequest represents the request body for verifying an OTP
type OTPVerifyRequest struct {
	Phone string `json:"phone" validate:"required,min=10,max=15"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

// LoginResponse is returned after a successful OTP verification
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}
