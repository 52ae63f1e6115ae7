package model

// Employee maps to karyawan. Identity is the time clock's work number.
type Employee struct {
	WorkNo   int    `gorm:"column:work_no;primaryKey;autoIncrement:false" json:"work_no"`
	Name     string `gorm:"column:nama_karyawan;type:varchar(255);not null" json:"nama_karyawan"`
	DeptID   *uint  `gorm:"column:dept_id"                                  json:"dept_id,omitempty"`
	IsActive bool   `gorm:"column:status_aktif;not null;default:true"       json:"status_aktif"`
}

// TableName table name
func (Employee) TableName() string { return "karyawan" }
