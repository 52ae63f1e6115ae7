package model

// Department maps to departemen. Created lazily by import; name is the natural key.
type Department struct {
	DeptID uint   `gorm:"column:dept_id;primaryKey;autoIncrement"         json:"dept_id"`
	Name   string `gorm:"column:nama_departemen;type:varchar(100);not null;uniqueIndex" json:"nama_departemen"`
}

// TableName table name
func (Department) TableName() string { return "departemen" }
