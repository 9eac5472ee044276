package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-redis/redis/v8"
)

// OTPTTL is how long an issued OTP stays valid
const OTPTTL = 5 * time.Minute

// ErrOTPInvalid is returned for missing, expired, or mismatched OTPs
var ErrOTPInvalid = errors.New("invalid or expired OTP")

// OTPStore keeps one pending OTP per phone in redis with TTL-based expiry
type OTPStore struct {
	client *redis.Client
}

// NewOTPStore creates an OTP store backed by the given redis client
func NewOTPStore(client *redis.Client) *OTPStore {
	return &OTPStore{client: client}
}

func otpKey(phone string) string {
	return "otp:" + phone
}

// Issue generates a 6-digit OTP for the phone and stores it with a TTL.
// A second request for the same phone replaces the previous code.
func (s *OTPStore) Issue(ctx context.Context, phone string) (string, error) {
	code := fmt.Sprintf("%06d", rand.Intn(1000000))

	if err := s.client.Set(ctx, otpKey(phone), code, OTPTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store OTP: %w", err)
	}

	return code, nil
}

// Verify checks the submitted code against the stored one and consumes it on
// success. Expired codes are evicted by redis and show up as missing.
func (s *OTPStore) Verify(ctx context.Context, phone, code string) error {
	stored, err := s.client.Get(ctx, otpKey(phone)).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrOTPInvalid
		}
		return fmt.Errorf("failed to read OTP: %w", err)
	}

	if stored != code {
		return ErrOTPInvalid
	}

	if err := s.client.Del(ctx, otpKey(phone)).Err(); err != nil {
		return fmt.Errorf("failed to consume OTP: %w", err)
	}

	return nil
}
