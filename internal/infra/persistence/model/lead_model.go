package model

// LeadModel mirrors the 'leads' table. closing_date is stored as text and
// carried through unparsed; estimates are whole currency amounts.
type LeadModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(100);not null"`
	Description   string `gorm:"type:varchar(50);not null"`
	UpperEstimate int64  `gorm:"not null"`
	LowerEstimate int64  `gorm:"not null"`
	ClosingDate   string `gorm:"type:varchar(100);not null"`
	Status        string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (LeadModel) TableName() string {
	return "leads"
}
