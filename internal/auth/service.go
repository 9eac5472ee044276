package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/clubvision/clubvision/internal/user"
)

// ErrInvalidPhone is returned when the phone number is not all digits
var ErrInvalidPhone = errors.New("invalid phone number")

// Service handles OTP login
type Service struct {
	otps   *OTPStore
	users  *user.Service
	logger *zap.Logger
}

// NewService creates a new auth service
func NewService(otps *OTPStore, users *user.Service, logger *zap.Logger) *Service {
	return &Service{otps: otps, users: users, logger: logger}
}

// RequestOTP issues an OTP for the phone. The code is logged instead of sent
// until an SMS provider is integrated.
func (s *Service) RequestOTP(ctx context.Context, phone string) error {
	phone = strings.TrimSpace(phone)
	if !isDigits(phone) {
		return ErrInvalidPhone
	}

	code, err := s.otps.Issue(ctx, phone)
	if err != nil {
		return err
	}

	s.logger.Debug("OTP issued", zap.String("phone", phone), zap.String("otp", code))
	return nil
}

// VerifyOTP validates the code and logs the user in, creating the account on
// first login. Returns an opaque bearer token.
func (s *Service) VerifyOTP(ctx context.Context, phone, code string) (*LoginResponse, error) {
	phone = strings.TrimSpace(phone)
	code = strings.TrimSpace(code)

	if err := s.otps.Verify(ctx, phone, code); err != nil {
		return nil, err
	}

	u, err := s.users.FindOrCreate(ctx, phone)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:  fmt.Sprintf("user-%d", u.ID),
		UserID: u.ID,
	}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
