package repository

import "errors"

// 数据层错误，由 Service 层映射为业务错误
var (
	ErrRecordNotFound        = errors.New("repository: 记录不存在")
	ErrDuplicateID           = errors.New("repository: 标识已存在")
	ErrStillReferenced       = errors.New("repository: 记录仍被排班引用")
	ErrDuplicateAssignment   = errors.New("repository: 相同员工、班次与日期的排班已存在")
	ErrStaffReferenceMissing = errors.New("repository: 排班引用的员工不存在")
	ErrShiftReferenceMissing = errors.New("repository: 排班引用的班次不存在")
	ErrDuplicateUsername     = errors.New("repository: 用户名已存在")
)
