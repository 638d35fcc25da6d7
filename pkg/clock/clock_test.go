package clock

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := map[string]time.Duration{
		"08:00":    8 * time.Hour,
		"23:59":    23*time.Hour + 59*time.Minute,
		"07:30:15": 7*time.Hour + 30*time.Minute + 15*time.Second,
	}
	for in, want := range cases {
		got, err := ParseTimeOfDay(in)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q) 应成功: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseTimeOfDay(%q) = %v，期望 %v", in, got, want)
		}
	}

	for _, bad := range []string{"", "8:00", "24:00", "12:60", "ab:cd", "12:00:00:00", "+8:00", "08:+5", "-1:00", " 8:00"} {
		if _, err := ParseTimeOfDay(bad); err == nil {
			t.Errorf("ParseTimeOfDay(%q) 应失败", bad)
		}
	}
}

func TestIsDate(t *testing.T) {
	if !IsDate("2030-01-10") {
		t.Error("2030-01-10 应为合法日期")
	}
	for _, bad := range []string{"2030-02-30", "10/01/2030", "2030-1-10", ""} {
		if IsDate(bad) {
			t.Errorf("%q 不应为合法日期", bad)
		}
	}
}

func TestAt(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skipf("缺少时区数据: %v", err)
	}
	got, err := At("2030-01-10", "08:30", loc)
	if err != nil {
		t.Fatalf("At 应成功: %v", err)
	}
	want := time.Date(2030, 1, 10, 8, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("At = %v，期望 %v", got, want)
	}
}

func TestSystem_DefaultsToUTC(t *testing.T) {
	c := NewSystem(nil)
	if c.Location() != time.UTC {
		t.Errorf("期望 UTC，实际 %v", c.Location())
	}
	if !IsDate(c.Today()) {
		t.Errorf("Today() 格式无效: %s", c.Today())
	}
}
