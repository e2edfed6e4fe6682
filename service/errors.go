package service

import "errors"

// Kind 业务错误分类
type Kind int

const (
	// KindInternal 基础设施错误（数据库等），不在本层处理
	KindInternal Kind = iota
	// KindValidation 输入缺失或格式错误
	KindValidation
	// KindNotFound 记录不存在或不属于当前用户
	KindNotFound
	// KindPrecondition 前置条件不满足（如未配置发薪日）
	KindPrecondition
)

// Error 面向用户的业务错误，Msg 可直接展示
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// KindOf 返回错误分类；非业务错误一律视为 KindInternal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func validationError(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func notFoundError(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

var (
	// ErrNoPaydaySelected 15日与30日均未勾选
	ErrNoPaydaySelected = &Error{Kind: KindPrecondition, Msg: "请先在设置中选择15日和/或30日发薪"}
	// ErrSalaryNotConfigured 工资金额未设置或不大于0
	ErrSalaryNotConfigured = &Error{Kind: KindPrecondition, Msg: "请先设置工资金额"}
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = &Error{Kind: KindNotFound, Msg: "用户不存在"}
	// ErrLoanNotFound 借款不存在或不属于当前用户
	ErrLoanNotFound = &Error{Kind: KindNotFound, Msg: "借款不存在"}
	// ErrEmailTaken 邮箱已被其他用户使用
	ErrEmailTaken = &Error{Kind: KindValidation, Msg: "该邮箱已被使用"}
	// ErrRecordNotFound 存储层查无记录时返回，由服务层转换为具体的 NotFound 错误
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicatePosting 存储层检测到重复的系统入账
	ErrDuplicatePosting = errors.New("duplicate posting")
)
