package api

import (
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportRows() *sqlmock.Rows {
	occurred := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(transactionColumns).
		AddRow(3, 1, nil, "EXPENSE", "GROCERIES", "120.50", "超市", occurred, nil, time.Now(), time.Now()).
		AddRow(2, 1, nil, "INCOME", "SALARY", "900.00", "工资", occurred, "salary:1:2024-05-15", time.Now(), time.Now())
}

func TestExportHandler_ExportCSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := initTestConfig(t)
	freezeNow(t, time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC))

	mock.ExpectQuery("SELECT \\* FROM `transactions`").WillReturnRows(exportRows())

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/export/csv", NewExportHandler(cfg).ExportCSV)

	w := doJSON(router, "GET", "/export/csv?month=2024-05", "")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "transactions_2024-05-01_2024-05-31.csv")

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	lines := strings.Split(strings.TrimSpace(body), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "食品杂货")
	assert.Contains(t, lines[2], "900.00")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportExcel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := initTestConfig(t)
	freezeNow(t, time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC))

	mock.ExpectQuery("SELECT \\* FROM `transactions`").WillReturnRows(exportRows())

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/export/excel", NewExportHandler(cfg).ExportExcel)

	w := doJSON(router, "GET", "/export/excel?period=3months", "")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	// xlsx 为 zip 格式
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_InvalidType(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := initTestConfig(t)

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/export/csv", NewExportHandler(cfg).ExportCSV)

	w := doJSON(router, "GET", "/export/csv?type=ALL", "")
	assert.Equal(t, 400, w.Code)
}
