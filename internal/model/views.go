package model

// AttendanceView is an attendance record joined with its employee and department.
type AttendanceView struct {
	RecordID       uint             `gorm:"column:record_id"       json:"record_id"`
	Date           string           `gorm:"column:tanggal_absensi" json:"tanggal_absensi"`
	WorkNo         int              `gorm:"column:work_no"         json:"work_no"`
	EmployeeName   string           `gorm:"column:nama_karyawan"   json:"nama_karyawan"`
	DepartmentName *string          `gorm:"column:nama_departemen" json:"nama_departemen"`
	ClockIn        *string          `gorm:"column:jam_masuk"       json:"jam_masuk"`
	ClockOut       *string          `gorm:"column:jam_pulang"      json:"jam_pulang"`
	OvertimeIn     *string          `gorm:"column:lembur_masuk"    json:"lembur_masuk"`
	OvertimeOut    *string          `gorm:"column:lembur_pulang"   json:"lembur_pulang"`
	AnomalyTimes   *string          `gorm:"column:waktu_anomali"   json:"waktu_anomali"`
	Status         ValidationStatus `gorm:"column:status_validasi" json:"status_validasi"`
	EditorNote     *string          `gorm:"column:catatan_editor"  json:"catatan_editor"`
}

// RecapRow aggregates one employee's records over a date range.
type RecapRow struct {
	WorkNo         int     `gorm:"column:work_no"          json:"work_no"`
	EmployeeName   string  `gorm:"column:nama_karyawan"    json:"nama_karyawan"`
	DepartmentName *string `gorm:"column:nama_departemen"  json:"nama_departemen"`
	DaysPresent    int64   `gorm:"column:total_hari_masuk" json:"total_hari_masuk"`
	Pending        int64   `gorm:"column:total_pending"    json:"total_pending"`
	Anomalies      int64   `gorm:"column:total_anomali"    json:"total_anomali"`
}

// ViolationView is a violation note with the record, employee and department it belongs to.
type ViolationView struct {
	ViolationID    uint    `gorm:"column:pelanggaran_id"      json:"pelanggaran_id"`
	RecordID       uint    `gorm:"column:record_id"           json:"record_id"`
	Date           string  `gorm:"column:tanggal_absensi"     json:"tanggal_absensi"`
	WorkNo         int     `gorm:"column:work_no"             json:"work_no"`
	EmployeeName   string  `gorm:"column:nama_karyawan"       json:"nama_karyawan"`
	DepartmentName *string `gorm:"column:nama_departemen"     json:"nama_departemen"`
	StartTime      string  `gorm:"column:waktu_mulai"         json:"waktu_mulai"`
	EndTime        string  `gorm:"column:waktu_selesai"       json:"waktu_selesai"`
	Note           string  `gorm:"column:catatan_pelanggaran" json:"catatan_pelanggaran"`
}

// DepartmentSummary is a department with the number of employees assigned to it.
type DepartmentSummary struct {
	DeptID        uint   `gorm:"column:dept_id"         json:"dept_id"`
	Name          string `gorm:"column:nama_departemen" json:"nama_departemen"`
	EmployeeCount int64  `gorm:"column:jumlah_karyawan" json:"jumlah_karyawan"`
}
