package dto

// ── attendance module ──

// DateRangeRequest inclusive YYYY-MM-DD range shared by attendance and report queries
type DateRangeRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date"   binding:"required"`
}

// ReviewRequest sets the review state of one record
type ReviewRequest struct {
	Status string  `json:"status_validasi" binding:"required"`
	Note   *string `json:"catatan_editor"`
}

// ViolationRequest records a violation window on one record
type ViolationRequest struct {
	StartTime string `json:"waktu_mulai"         binding:"required"`
	EndTime   string `json:"waktu_selesai"       binding:"required"`
	Note      string `json:"catatan_pelanggaran" binding:"max=1000"`
}
