package dto

// ── import module ──

// ImportRequest multipart form fields of POST /imports (the file travels as "file")
type ImportRequest struct {
	AttendanceDate string `form:"attendance_date" binding:"required"`
}

// ImportResult outcome of one committed import
type ImportResult struct {
	BatchID            uint   `json:"batch_id"`
	FileName           string `json:"nama_file"`
	Checksum           string `json:"checksum"`
	AttendanceDate     string `json:"tanggal_absensi"`
	Total              int    `json:"total"`
	DepartmentsCreated int    `json:"departemen_baru"`
	EmployeesCreated   int    `json:"karyawan_baru"`
	EmployeesUpdated   int    `json:"karyawan_diperbarui"`
	RecordsCreated     int    `json:"absensi_baru"`
	RecordsUpdated     int    `json:"absensi_diperbarui"`
}

// ImportListRequest query of GET /imports
type ImportListRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}
