package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout 日历日期格式
const DateLayout = "2006-01-02"

// Clock 提供“今天”的日历日期（YYYY-MM-DD）
type Clock interface {
	Today() string
}

// System 按配置时区取当前日期
type System struct {
	loc *time.Location
}

// NewSystem loc 为 nil 时使用 UTC
func NewSystem(loc *time.Location) *System {
	if loc == nil {
		loc = time.UTC
	}
	return &System{loc: loc}
}

func (c *System) Today() string {
	return time.Now().In(c.loc).Format(DateLayout)
}

// Location 返回时区
func (c *System) Location() *time.Location { return c.loc }

// Fixed 固定日期，测试使用
type Fixed string

func (f Fixed) Today() string { return string(f) }

// IsDate 判断 s 是否为合法的 YYYY-MM-DD 日期
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseTimeOfDay 解析 HH:MM 或 HH:MM:SS，返回距零点的时长
func ParseTimeOfDay(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("时间格式无效: %q", s)
	}

	limits := []int{23, 59, 59}
	units := []time.Duration{time.Hour, time.Minute, time.Second}
	var d time.Duration
	for i, p := range parts {
		if len(p) != 2 || !isDigit(p[0]) || !isDigit(p[1]) {
			return 0, fmt.Errorf("时间格式无效: %q", s)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return 0, fmt.Errorf("时间格式无效: %q", s)
		}
		d += time.Duration(n) * units[i]
	}
	return d, nil
}

// At 将日期与时刻组合为 loc 下的时间点
func At(date, timeOfDay string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("日期格式无效: %q", date)
	}
	offset, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc).Add(offset), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
