package dto

// ErrorResponseDTO 는 공통 에러 응답 형식이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"view_not_found"`
}

// HealthDTO 는 /health 응답이다.
type HealthDTO struct {
	Status string `json:"status" example:"ok"`
	Views  int    `json:"views" example:"3"`
}
