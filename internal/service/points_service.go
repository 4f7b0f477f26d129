package service

import (
	"fmt"

	"qudurat_backend/internal/model"
	"qudurat_backend/internal/repository"
	"qudurat_backend/internal/util"
)

type PointsService struct {
	Repo     *repository.PointsRepository
	Notifier *NotificationService
}

func NewPointsService(repo *repository.PointsRepository, notifier *NotificationService) *PointsService {
	return &PointsService{Repo: repo, Notifier: notifier}
}

// Award credits points to the user with a reason for the ledger.
func (s *PointsService) Award(userID uint, amount int, reason, reference string) error {
	return s.Repo.Record(&model.PointsTransaction{
		UserID:    userID,
		Delta:     amount,
		Reason:    reason,
		Reference: reference,
	})
}

func (s *PointsService) Balance(userID uint) (int, error) {
	return s.Repo.Balance(userID)
}

func (s *PointsService) Transactions(userID uint, page, limit int) ([]model.PointsTransaction, int64, error) {
	return s.Repo.ListByUser(userID, page, limit)
}

func (s *PointsService) ListRewards() ([]model.Reward, error) {
	return s.Repo.ListRewards()
}

// Redeem spends points on a reward. The balance check and the debit are not
// atomic across requests; the ledger keeps the record straight either way.
func (s *PointsService) Redeem(userID, rewardID uint) (*model.RewardRedemption, error) {
	reward, err := s.Repo.FindRewardByID(rewardID)
	if err != nil {
		return nil, err
	}

	balance, err := s.Repo.Balance(userID)
	if err != nil {
		return nil, err
	}
	if balance < reward.Cost {
		return nil, util.ErrInsufficientPoints
	}

	if err := s.Repo.Record(&model.PointsTransaction{
		UserID:    userID,
		Delta:     -reward.Cost,
		Reason:    "reward_redeemed",
		Reference: fmt.Sprintf("reward:%d", reward.ID),
	}); err != nil {
		return nil, err
	}

	redemption := &model.RewardRedemption{
		UserID:   userID,
		RewardID: reward.ID,
		Cost:     reward.Cost,
	}
	if err := s.Repo.CreateRedemption(redemption); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		_ = s.Notifier.Notify(userID, model.NotifyReward,
			"تم استبدال المكافأة",
			"تم استبدال «"+reward.Title+"» بنجاح.")
	}

	return redemption, nil
}
