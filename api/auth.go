package api

import (
	"budgetbook/config"
	"budgetbook/database"
	"budgetbook/middleware"
	"budgetbook/models"
	"budgetbook/repository"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AuthHandler 认证与个人资料处理器
type AuthHandler struct {
	cfg   *config.Config
	users *service.UserService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		cfg:   cfg,
		users: service.NewUserService(repository.New(database.DB)),
	}
}

// ProfileRequest 个人资料（注册与修改共用）
type ProfileRequest struct {
	Name         string          `json:"name" binding:"required,min=2" example:"张三"`
	Email        string          `json:"email" binding:"required,email" example:"zhang@example.com"`
	Currency     string          `json:"currency" binding:"omitempty,min=3,max=5" example:"MNT"`
	SalaryAmount decimal.Decimal `json:"salary_amount" swaggertype:"string" example:"1500000"`
	Payday15     bool            `json:"payday15" example:"true"`
	Payday30     bool            `json:"payday30" example:"true"`
}

func (r ProfileRequest) input() service.ProfileInput {
	return service.ProfileInput{
		Name:         r.Name,
		Email:        r.Email,
		Currency:     r.Currency,
		SalaryAmount: r.SalaryAmount,
		Payday15:     r.Payday15,
		Payday30:     r.Payday30,
	}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	ProfileRequest
	Password string `json:"password" binding:"required,min=6,max=50" example:"password123"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"zhang@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token    string      `json:"token"`
	UserInfo models.User `json:"user_info"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required" example:"oldpassword123"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=50" example:"newpassword123"`
}

func (h *AuthHandler) issueToken(c *gin.Context, user *models.User, message string) {
	token, err := middleware.GenerateToken(user.ID, user.Email, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}
	SuccessWithMessage(c, message, LoginResponse{Token: token, UserInfo: *user})
}

// Register 用户注册
// @Summary 用户注册
// @Description 创建新用户并返回 JWT。币种默认 MNT，发薪日可选15日和/或30日
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 200 {object} Response{data=LoginResponse} "注册成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.input(), req.Password)
	if err != nil {
		respondError(c, err, "注册失败")
		return
	}
	h.issueToken(c, user, "注册成功")
}

// Login 用户登录
// @Summary 用户登录
// @Description 邮箱与密码登录，获取 JWT token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "邮箱或密码错误"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			Unauthorized(c, err.Error())
			return
		}
		respondError(c, err, "登录失败")
		return
	}
	h.issueToken(c, user, "登录成功")
}

// GetProfile 获取用户信息
// @Summary 获取当前用户信息
// @Description 获取当前登录用户的资料与工资配置
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "用户不存在"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := h.users.Profile(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err, "获取用户信息失败")
		return
	}
	Success(c, user)
}

// UpdateProfile 修改个人资料
// @Summary 修改个人资料
// @Description 修改姓名、邮箱、币种、工资金额与发薪日
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProfileRequest true "个人资料"
// @Success 200 {object} Response{data=models.User} "修改成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), middleware.GetCurrentUserID(c), req.input())
	if err != nil {
		respondError(c, err, "更新资料失败")
		return
	}
	SuccessWithMessage(c, "资料已更新", user)
}

// ChangePassword 修改密码
// @Summary 修改密码
// @Description 修改当前用户密码
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "密码信息"
// @Success 200 {object} Response "修改成功"
// @Failure 400 {object} Response "请求参数错误或原密码错误"
// @Router /api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	if err := h.users.ChangePassword(c.Request.Context(), middleware.GetCurrentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err, "修改密码失败")
		return
	}
	SuccessWithMessage(c, "密码修改成功", nil)
}
