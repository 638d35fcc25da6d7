package model

// Shift 班次定义，对应槽位 shifts
type Shift struct {
	ID        string `json:"id"`
	Type      string `json:"type"`      // 班次类型，如 Morning / Afternoon / Night
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM，严格晚于 StartTime
}
