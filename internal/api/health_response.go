package api

// 健康檢查只回報布林狀態，不對外傳播底層錯誤。
// swagger:model api.HealthResponse
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Database bool   `json:"database" example:"true"`
	Cache    bool   `json:"cache" example:"true"`
}
