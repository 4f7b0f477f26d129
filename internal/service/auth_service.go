package service

import (
	"errors"

	"qudurat_backend/internal/config"
	"qudurat_backend/internal/model"
	"qudurat_backend/internal/repository"
	"qudurat_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

type RegisterStudentRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	ParentPhone string `json:"parentPhone" binding:"required"`
}

type RegisterParentRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

func (s *AuthService) RegisterStudent(req RegisterStudentRequest) (*model.User, error) {
	user := &model.User{
		Name:        req.Name,
		Phone:       req.Phone,
		Password:    req.Password,
		Role:        model.Student,
		ParentPhone: req.ParentPhone,
	}
	return s.register(user)
}

func (s *AuthService) RegisterParent(req RegisterParentRequest) (*model.User, error) {
	user := &model.User{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     model.Parent,
	}
	return s.register(user)
}

func (s *AuthService) register(user *model.User) (*model.User, error) {
	_, err := s.UserRepo.FindByPhone(user.Phone)
	if err == nil {
		return nil, util.ErrPhoneRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashedPassword)

	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(phone, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByPhone(phone)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if user.Disabled {
		return "", nil, errors.New("account disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	_ = s.UserRepo.UpdateLastLogin(user.ID)

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}
