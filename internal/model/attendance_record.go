package model

// AttendanceRecord maps to catatan_absensi.
// At most one row per (WorkNo, Date); RecordID never changes across re-imports.
type AttendanceRecord struct {
	RecordID     uint             `gorm:"column:record_id;primaryKey;autoIncrement"                json:"record_id"`
	WorkNo       int              `gorm:"column:work_no;not null;index:idx_catatan_absensi_work_no_tanggal" json:"work_no"`
	Date         string           `gorm:"column:tanggal_absensi;type:varchar(10);not null;index:idx_catatan_absensi_work_no_tanggal" json:"tanggal_absensi"`
	ClockIn      *string          `gorm:"column:jam_masuk;type:varchar(5)"                         json:"jam_masuk"`
	ClockOut     *string          `gorm:"column:jam_pulang;type:varchar(5)"                        json:"jam_pulang"`
	OvertimeIn   *string          `gorm:"column:lembur_masuk;type:varchar(5)"                      json:"lembur_masuk"`
	OvertimeOut  *string          `gorm:"column:lembur_pulang;type:varchar(5)"                     json:"lembur_pulang"`
	AnomalyTimes *string          `gorm:"column:waktu_anomali;type:text"                           json:"waktu_anomali"`
	Status       ValidationStatus `gorm:"column:status_validasi;type:varchar(20);not null;default:PENDING" json:"status_validasi"`
	EditorNote   *string          `gorm:"column:catatan_editor;type:text"                          json:"catatan_editor"`
}

// TableName table name
func (AttendanceRecord) TableName() string { return "catatan_absensi" }
