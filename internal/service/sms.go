package service

import (
	"qudurat_backend/pkg/logger"

	"go.uber.org/zap"
)

// SMSSender dispatches a text message to a phone number. Delivery is the
// provider's concern; implementations return once the message is handed off.
type SMSSender interface {
	Send(phone, message string) error
}

// ConsoleSMSSender logs messages instead of sending them. Used in development
// and tests.
type ConsoleSMSSender struct{}

func (ConsoleSMSSender) Send(phone, message string) error {
	logger.Log.Info("sms (console)", zap.String("phone", phone), zap.String("message", message))
	return nil
}
