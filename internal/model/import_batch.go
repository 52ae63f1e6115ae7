package model

import "time"

// ImportBatch maps to riwayat_impor, one row per committed import.
type ImportBatch struct {
	BatchID    uint      `gorm:"column:batch_id;primaryKey;autoIncrement"     json:"batch_id"`
	FileName   string    `gorm:"column:nama_file;type:varchar(255);not null"  json:"nama_file"`
	Checksum   string    `gorm:"column:checksum;type:varchar(16);not null"    json:"checksum"`
	Date       string    `gorm:"column:tanggal_absensi;type:varchar(10);not null" json:"tanggal_absensi"`
	EntryCount int       `gorm:"column:jumlah_data;not null;default:0"        json:"jumlah_data"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"                   json:"created_at"`
}

// TableName table name
func (ImportBatch) TableName() string { return "riwayat_impor" }
