package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"qudurat_backend/internal/config"
	"qudurat_backend/internal/repository"
	"qudurat_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

// OTPService issues and verifies one-time codes for phone verification.
// Codes live in Redis with a TTL and are single use; resends are throttled
// per phone.
type OTPService struct {
	Redis    *redis.Client
	UserRepo *repository.UserRepository
	Sender   SMSSender
	Cfg      *config.Config
}

func NewOTPService(rdb *redis.Client, userRepo *repository.UserRepository, sender SMSSender, cfg *config.Config) *OTPService {
	return &OTPService{
		Redis:    rdb,
		UserRepo: userRepo,
		Sender:   sender,
		Cfg:      cfg,
	}
}

func otpKey(phone string) string {
	return "otp:" + phone
}

func otpResendKey(phone string) string {
	return "otp:resend:" + phone
}

// Request generates a fresh code for the phone and hands it to the SMS
// sender. A second request within the resend window is rejected.
func (s *OTPService) Request(phone string) error {
	ctx := context.Background()

	ok, err := s.Redis.SetNX(ctx, otpResendKey(phone), "1",
		time.Duration(s.Cfg.OTP.ResendSeconds)*time.Second).Result()
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrOTPThrottle
	}

	code, err := generateCode(s.Cfg.OTP.CodeLength)
	if err != nil {
		return err
	}

	ttl := time.Duration(s.Cfg.OTP.TTLMinutes) * time.Minute
	if err := s.Redis.Set(ctx, otpKey(phone), code, ttl).Err(); err != nil {
		return err
	}

	return s.Sender.Send(phone, "رمز التحقق الخاص بك في بيت القدرات: "+code)
}

// Verify checks the code and consumes it. On success the phone is marked
// verified on the user row.
func (s *OTPService) Verify(phone, code string) error {
	ctx := context.Background()

	stored, err := s.Redis.Get(ctx, otpKey(phone)).Result()
	if err != nil || stored == "" || stored != code {
		return util.ErrOTPInvalid
	}

	s.Redis.Del(ctx, otpKey(phone))

	return s.UserRepo.MarkPhoneVerified(phone)
}

// generateCode returns a zero-padded numeric code of the given length using
// crypto/rand.
func generateCode(length int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", length, n), nil
}
