package model

// ViolationNote maps to pelanggaran. Written by review tooling, deleted with its record.
type ViolationNote struct {
	ViolationID uint   `gorm:"column:pelanggaran_id;primaryKey;autoIncrement" json:"pelanggaran_id"`
	RecordID    uint   `gorm:"column:record_id;not null;index"                json:"record_id"`
	StartTime   string `gorm:"column:waktu_mulai;type:varchar(5)"             json:"waktu_mulai"`
	EndTime     string `gorm:"column:waktu_selesai;type:varchar(5)"           json:"waktu_selesai"`
	Note        string `gorm:"column:catatan_pelanggaran;type:text"           json:"catatan_pelanggaran"`
}

// TableName table name
func (ViolationNote) TableName() string { return "pelanggaran" }
