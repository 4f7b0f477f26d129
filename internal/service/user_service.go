package service

import (
	"qudurat_backend/internal/model"
	"qudurat_backend/internal/repository"
	"qudurat_backend/internal/util"
)

type UserService struct {
	Repo     *repository.UserRepository
	Notifier *NotificationService
}

func NewUserService(repo *repository.UserRepository, notifier *NotificationService) *UserService {
	return &UserService{Repo: repo, Notifier: notifier}
}

func (s *UserService) Get(userID uint) (*model.User, error) {
	return s.Repo.FindByID(userID)
}

type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Language *string `json:"language"`
	Avatar   *string `json:"avatar"`
}

func (s *UserService) UpdateProfile(userID uint, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Language != nil {
		user.Language = *req.Language
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}

	if err := s.Repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Children returns the students linked to the parent's phone number.
func (s *UserService) Children(parent *model.User) ([]model.User, error) {
	return s.Repo.ListStudentsByParentPhone(parent.Phone)
}

// ApproveStudent lets a parent approve a linked student after placement.
func (s *UserService) ApproveStudent(parent *model.User, studentID uint) error {
	student, err := s.Repo.FindByID(studentID)
	if err != nil {
		return err
	}
	if student.Role != model.Student || student.ParentPhone != parent.Phone {
		return util.ErrPermissionDenied
	}

	if err := s.Repo.UpdateApprovalStatus(studentID, model.ApprovalGranted); err != nil {
		return err
	}

	if s.Notifier != nil {
		_ = s.Notifier.Notify(studentID, model.NotifyApproval,
			"تمت الموافقة",
			"وافق ولي أمرك على نتيجة اختبار تحديد المستوى. يمكنك متابعة رحلتك التدريبية.")
	}
	return nil
}
