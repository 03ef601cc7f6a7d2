package model

// ProjectModel mirrors the 'projects' table. The table is part of the schema
// but no repository operates on it yet; it has no foreign keys to users or
// leads.
type ProjectModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Idea        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}
