package api

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthHandler_Register(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := initTestConfig(t)

	// 邮箱未被占用
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/register", NewAuthHandler(cfg).Register)

	body := `{"name":"张三","email":"zhang@example.com","password":"password123","currency":"usd","salary_amount":"1500000","payday15":true}`
	w := doJSON(router, "POST", "/register", body)

	assert.Equal(t, 200, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, float64(200), resp["code"])
	assert.Equal(t, "注册成功", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	info := data["user_info"].(map[string]interface{})
	assert.Equal(t, "USD", info["currency"])
	assert.NotContains(t, info, "password_hash")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := initTestConfig(t)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(7, "李四", "zhang@example.com", "x", "MNT", "0", false, false, time.Now(), time.Now()))

	router := gin.New()
	router.POST("/register", NewAuthHandler(cfg).Register)

	w := doJSON(router, "POST", "/register", `{"name":"张三","email":"zhang@example.com","password":"password123"}`)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "该邮箱已被使用", decodeResponse(t, w)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := initTestConfig(t)

	router := gin.New()
	router.POST("/register", NewAuthHandler(cfg).Register)

	cases := []struct {
		name string
		body string
	}{
		{"缺少邮箱", `{"name":"张三","password":"password123"}`},
		{"密码过短", `{"name":"张三","email":"zhang@example.com","password":"123"}`},
		{"姓名过短", `{"name":"张","email":"zhang@example.com","password":"password123"}`},
		{"邮箱格式错误", `{"name":"张三","email":"not-an-email","password":"password123"}`},
		{"工资为负", `{"name":"张三","email":"zhang@example.com","password":"password123","salary_amount":"-1"}`},
		{"币种过长", `{"name":"张三","email":"zhang@example.com","password":"password123","currency":"DOLLAR"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(router, "POST", "/register", tc.body)
			assert.Equal(t, 400, w.Code)
		})
	}
}

func TestAuthHandler_MalformedEmail(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := initTestConfig(t)

	h := NewAuthHandler(cfg)
	router := gin.New()
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)

	for _, email := range []string{"not-an-email", "zhang@", "zhang example.com", "张三 <zhang@example.com>"} {
		w := doJSON(router, "POST", "/register", `{"name":"张三","email":"`+email+`","password":"password123"}`)
		assert.Equal(t, 400, w.Code, email)
		assert.Contains(t, decodeResponse(t, w)["message"], "Email", email)

		w = doJSON(router, "POST", "/login", `{"email":"`+email+`","password":"password123"}`)
		assert.Equal(t, 400, w.Code, email)
	}
	// 绑定阶段即拒绝，不查询数据库
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := initTestConfig(t)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "张三", "zhang@example.com", hashed(t, "password123"), "MNT", "1500000", true, true, time.Now(), time.Now()))

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg).Login)

	w := doJSON(router, "POST", "/login", `{"email":"zhang@example.com","password":"password123"}`)
	assert.Equal(t, 200, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "登录成功", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := initTestConfig(t)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "张三", "zhang@example.com", hashed(t, "password123"), "MNT", "0", false, false, time.Now(), time.Now()))

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg).Login)

	w := doJSON(router, "POST", "/login", `{"email":"zhang@example.com","password":"wrong-password"}`)
	assert.Equal(t, 401, w.Code)
	assert.Equal(t, "邮箱或密码错误", decodeResponse(t, w)["message"])
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := initTestConfig(t)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns))

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg).Login)

	w := doJSON(router, "POST", "/login", `{"email":"nobody@example.com","password":"password123"}`)
	assert.Equal(t, 401, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_GetProfile_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := initTestConfig(t)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns))

	router := gin.New()
	router.Use(setUserIDMiddleware(99))
	router.GET("/profile", NewAuthHandler(cfg).GetProfile)

	w := doJSON(router, "GET", "/profile", "")
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "用户不存在", decodeResponse(t, w)["message"])
}

func TestAuthHandler_ChangePassword_WrongOld(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := initTestConfig(t)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "张三", "zhang@example.com", hashed(t, "password123"), "MNT", "0", false, false, time.Now(), time.Now()))

	router := gin.New()
	router.Use(setUserIDMiddleware(3))
	router.PUT("/password", NewAuthHandler(cfg).ChangePassword)

	w := doJSON(router, "PUT", "/password", `{"old_password":"nope-nope","new_password":"newpassword123"}`)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "原密码错误", decodeResponse(t, w)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}
