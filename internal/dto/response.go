package dto

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string         `json:"status"`
	Storage string         `json:"storage"`
	Records map[string]int `json:"records"`
}
