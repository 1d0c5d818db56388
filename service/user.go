package service

import (
	"booksite/dao"
	"booksite/models"
	"booksite/pkg/encrypt"
	"booksite/pkg/snowflake"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUsernameExists     = errors.New("用户名已存在")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrUserInactive       = errors.New("账号已停用")
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	IsUsernameExist(ctx context.Context, username string) (bool, error)
	Register(ctx context.Context, opt *UserRegisterOpt) (*models.Users, error)
	Authenticate(ctx context.Context, username string, password string) (*models.Users, error)
	GetByID(ctx context.Context, id int64) (*models.Users, error)
	RecordLogin(ctx context.Context, id int64) error
}

type UserService struct {
	UsersRepo *dao.Users
}

type UserRegisterOpt struct {
	Username string
	Email    string
	Password string
}

func (s *UserService) IsUsernameExist(ctx context.Context, username string) (bool, error) {
	return s.UsersRepo.IsUsernameExist(ctx, username)
}

// Register 注册用户，密码以 bcrypt 存储
func (s *UserService) Register(ctx context.Context, opt *UserRegisterOpt) (*models.Users, error) {
	exist, err := s.UsersRepo.IsUsernameExist(ctx, opt.Username)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, ErrUsernameExists
	}

	hash, err := encrypt.HashPassword(opt.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.Users{
		ID:       snowflake.GenUserID(),
		Username: opt.Username,
		Email:    opt.Email,
		Password: hash,
		IsActive: true,
	}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		// 并发注册同名用户时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}

	return user, nil
}

// Authenticate 校验用户名密码
func (s *UserService) Authenticate(ctx context.Context, username string, password string) (*models.Users, error) {
	user, err := s.UsersRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.Users, error) {
	return s.UsersRepo.FindById(ctx, id)
}

func (s *UserService) RecordLogin(ctx context.Context, id int64) error {
	return s.UsersRepo.TouchLastLogin(ctx, id, time.Now())
}
