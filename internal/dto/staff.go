package dto

// ── 员工模块 DTO ──

// CreateStaffRequest 创建员工请求（同时作为更新合并后的校验视图）
type CreateStaffRequest struct {
	IDNumber     string `json:"idNumber"     validate:"required,digits,max=32"`
	Name         string `json:"name"         validate:"required,max=100"`
	Department   string `json:"department"   validate:"required,max=100"`
	Position     string `json:"position"     validate:"required,max=100"`
	Phone        string `json:"phone"        validate:"required,phone,max=20"`
	Email        string `json:"email"        validate:"required,email"`
	HireDate     string `json:"hireDate"     validate:"required,isodate"`
	ContractType string `json:"contractType" validate:"required,max=50"`
}

// UpdateStaffRequest 更新员工请求，nil 字段保持原值
type UpdateStaffRequest struct {
	IDNumber     *string `json:"idNumber"`
	Name         *string `json:"name"`
	Department   *string `json:"department"`
	Position     *string `json:"position"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	HireDate     *string `json:"hireDate"`
	ContractType *string `json:"contractType"`
}

// StaffResponse 员工信息响应
type StaffResponse struct {
	ID           string `json:"id"`
	IDNumber     string `json:"idNumber"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	HireDate     string `json:"hireDate"`
	ContractType string `json:"contractType"`
}
