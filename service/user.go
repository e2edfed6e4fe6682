package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"budgetbook/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// ProfileInput 个人资料参数（注册与修改共用）
type ProfileInput struct {
	Name         string
	Email        string
	Currency     string
	SalaryAmount decimal.Decimal
	Payday15     bool
	Payday30     bool
}

// ErrInvalidCredentials 邮箱或密码错误
var ErrInvalidCredentials = &Error{Kind: KindValidation, Msg: "邮箱或密码错误"}

// UserService 注册、登录与个人资料
type UserService struct {
	users UserStore
}

// NewUserService 创建用户服务
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// normalizeProfile 去除空白并补默认币种；邮箱格式由请求绑定校验，
// 去空白后姓名与币种可能变短，这里再检查一次长度
func normalizeProfile(in *ProfileInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if in.Currency == "" {
		in.Currency = models.DefaultCurrency
	}
	switch {
	case utf8.RuneCountInString(in.Name) < 2:
		return validationError("姓名至少2个字")
	case len(in.Currency) < 3 || len(in.Currency) > 5:
		return validationError("币种代码长度应为3到5个字符")
	case in.SalaryAmount.IsNegative():
		return validationError("工资金额不能为负数")
	}
	in.SalaryAmount = in.SalaryAmount.Round(2)
	return nil
}


// Register 注册新用户
func (s *UserService) Register(ctx context.Context, in ProfileInput, password string) (*models.User, error) {
	if err := normalizeProfile(&in); err != nil {
		return nil, err
	}
	if len(password) < 6 {
		return nil, validationError("密码至少6位")
	}

	if _, err := s.users.FindUserByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrRecordNotFound) {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Currency:     in.Currency,
		SalaryAmount: in.SalaryAmount,
		Payday15:     in.Payday15,
		Payday30:     in.Payday30,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}
	return user, nil
}

// Authenticate 校验邮箱与密码
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Profile 获取个人资料
func (s *UserService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return user, nil
}

// UpdateProfile 修改个人资料，邮箱不能与其他用户重复
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileInput) (*models.User, error) {
	if err := normalizeProfile(&in); err != nil {
		return nil, err
	}
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	other, err := s.users.FindUserByEmail(ctx, in.Email)
	switch {
	case err == nil && other.ID != userID:
		return nil, ErrEmailTaken
	case err != nil && !errors.Is(err, ErrRecordNotFound):
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Currency = in.Currency
	user.SalaryAmount = in.SalaryAmount
	user.Payday15 = in.Payday15
	user.Payday30 = in.Payday30
	if err := s.users.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("更新用户失败: %w", err)
	}
	return user, nil
}

// ErrWrongPassword 原密码错误
var ErrWrongPassword = &Error{Kind: KindValidation, Msg: "原密码错误"}

// ChangePassword 校验原密码后修改密码
func (s *UserService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return validationError("密码至少6位")
	}
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("密码加密失败: %w", err)
	}
	user.PasswordHash = string(hashed)
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("更新密码失败: %w", err)
	}
	return nil
}
