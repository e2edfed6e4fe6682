package api

import (
	"strconv"
	"time"

	"budgetbook/config"
)

const dateLayout = "2006-01-02"

// now 当前时间，测试中可替换
var now = time.Now

// localNow 配置时区下的当前时间
func localNow() time.Time {
	return now().In(config.Location())
}

// parseDate 按配置时区解析 YYYY-MM-DD，空字符串返回零值
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(dateLayout, value, config.Location())
}

// parseID 解析路径中的 ID 参数
func parseID(value string) (uint, bool) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
