package model

// Staff 员工档案，对应槽位 staff
type Staff struct {
	ID           string `json:"id"`
	IDNumber     string `json:"idNumber"` // 工号，仅数字
	Name         string `json:"name"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	HireDate     string `json:"hireDate"` // YYYY-MM-DD
	ContractType string `json:"contractType"`
}
