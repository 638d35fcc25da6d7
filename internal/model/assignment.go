package model

// Assignment 排班：某员工在某日期承担某班次，对应槽位 assignments
//
// (StaffID, ShiftID, Date) 三元组全局唯一；StaffID / ShiftID 仅按标识引用。
type Assignment struct {
	ID      string `json:"id"`
	StaffID string `json:"staffId"`
	ShiftID string `json:"shiftId"`
	Date    string `json:"date"` // YYYY-MM-DD
}

// SameSlot 判断两条排班是否占用同一 (员工, 班次, 日期)
func (a *Assignment) SameSlot(other *Assignment) bool {
	return a.StaffID == other.StaffID && a.ShiftID == other.ShiftID && a.Date == other.Date
}
