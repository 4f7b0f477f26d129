package service

import (
	"time"

	"qudurat_backend/internal/config"
	"qudurat_backend/internal/model"
	"qudurat_backend/internal/repository"
	"qudurat_backend/internal/util"
	"qudurat_backend/pkg/logger"

	"go.uber.org/zap"
)

type SubscriptionService struct {
	Repo     *repository.SubscriptionRepository
	Gateway  PaymentGateway
	Points   *PointsService
	Notifier *NotificationService
	Cfg      *config.Config
}

func NewSubscriptionService(
	repo *repository.SubscriptionRepository,
	gateway PaymentGateway,
	points *PointsService,
	notifier *NotificationService,
	cfg *config.Config,
) *SubscriptionService {
	return &SubscriptionService{
		Repo:     repo,
		Gateway:  gateway,
		Points:   points,
		Notifier: notifier,
		Cfg:      cfg,
	}
}

func (s *SubscriptionService) ListPlans() ([]model.SubscriptionPlan, error) {
	return s.Repo.ListPlans()
}

type SubscribeRequest struct {
	PlanID     uint   `json:"planId" binding:"required"`
	PaymentRef string `json:"paymentRef" binding:"required"`
}

// Subscribe opens a pending subscription tied to the client-side payment
// reference. It becomes active only after the gateway confirms payment.
func (s *SubscriptionService) Subscribe(userID uint, req SubscribeRequest) (*model.Subscription, error) {
	plan, err := s.Repo.FindPlanByID(req.PlanID)
	if err != nil {
		return nil, util.ErrPlanNotFound
	}

	sub := &model.Subscription{
		UserID:     userID,
		PlanID:     plan.ID,
		Status:     model.SubscriptionPending,
		PaymentRef: req.PaymentRef,
	}
	if err := s.Repo.Create(sub); err != nil {
		return nil, err
	}
	sub.Plan = plan
	return sub, nil
}

// VerifyPayment asks the gateway about the subscription's payment reference
// and activates the subscription when the payment is confirmed. Verification
// failure leaves the subscription pending; nothing is retried here.
func (s *SubscriptionService) VerifyPayment(userID, subscriptionID uint) (*model.Subscription, error) {
	sub, err := s.Repo.FindByID(subscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	if sub.Status == model.SubscriptionActive {
		return sub, nil
	}

	status, err := s.Gateway.Verify(sub.PaymentRef)
	if err != nil {
		return nil, err
	}
	if !status.Paid() {
		return nil, util.ErrPaymentNotVerified
	}

	now := time.Now()
	ends := now.AddDate(0, 0, sub.Plan.DurationDays)
	sub.Status = model.SubscriptionActive
	sub.StartsAt = &now
	sub.EndsAt = &ends
	if err := s.Repo.Update(sub); err != nil {
		return nil, err
	}

	if s.Points != nil && s.Cfg.Points.SubscriptionBonus > 0 {
		if err := s.Points.Award(userID, s.Cfg.Points.SubscriptionBonus, "subscription_bonus", sub.PaymentRef); err != nil {
			logger.Log.Error("subscription bonus award failed",
				zap.Uint("user_id", userID), zap.Error(err))
		}
	}

	if s.Notifier != nil {
		_ = s.Notifier.Notify(userID, model.NotifySubscription,
			"تم تفعيل الاشتراك",
			"تم تفعيل اشتراكك في «"+sub.Plan.Name+"» حتى "+ends.Format(util.DateFormat)+".")
	}

	return sub, nil
}

func (s *SubscriptionService) ListMine(userID uint) ([]model.Subscription, error) {
	return s.Repo.ListByUser(userID)
}

func (s *SubscriptionService) Active(userID uint) (*model.Subscription, error) {
	return s.Repo.FindActiveByUser(userID)
}

// ExpireDue is run periodically from the app's background loop.
func (s *SubscriptionService) ExpireDue() error {
	return s.Repo.ExpireDue()
}
