package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/report_admin/internal/auth"
	"github.com/report_admin/internal/models"
	"github.com/report_admin/internal/repositories"
	"github.com/report_admin/pkg/utils"
)

// LoginResult 是登录成功后返回给调用方的数据
type LoginResult struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Operator  *models.Operator `json:"operator"`
}

// OperatorInput 描述创建或更新管理员账号所需的数据
type OperatorInput struct {
	Username    string
	Password    string
	DisplayName string
	Email       string
	Role        string
}

// AuthService 定义了管理员认证服务的接口
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	SaveOperator(ctx context.Context, input OperatorInput) (*models.Operator, error)
}

type authService struct {
	operators repositories.OperatorRepository
	secret    string
	now       func() time.Time
}

// NewAuthService 创建一个新的 authService 实例
func NewAuthService(operators repositories.OperatorRepository, jwtSecret string) AuthService {
	return &authService{operators: operators, secret: jwtSecret, now: time.Now}
}

// Login 校验用户名和密码，成功后签发Token
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	operator, err := s.operators.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, storeError("get operator", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := auth.IssueToken(s.secret, operator, s.now())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	log.WithField("operator", operator.Username).Info("operator logged in")
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Operator: operator}, nil
}

// SaveOperator 以 bcrypt 哈希保存密码，按用户名创建或更新账号
func (s *authService) SaveOperator(ctx context.Context, input OperatorInput) (*models.Operator, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	if !utils.ValidateEmailFormat(input.Email) {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	role := input.Role
	if role == "" {
		role = "admin"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	operator := &models.Operator{
		Username:     username,
		DisplayName:  strings.TrimSpace(input.DisplayName),
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.operators.Save(ctx, operator); err != nil {
		return nil, storeError("save operator", err)
	}
	return operator, nil
}
