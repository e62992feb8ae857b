package models

// Account represents a bank account record. The numeric primary key is
// internal only; the UniqueID is the externally facing identifier and acts
// as the login credential, so it is generated once and never changes.
type Account struct {
	ID       uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	UniqueID string `json:"unique_id" gorm:"uniqueIndex;type:varchar(8);not null"`
	Username string `json:"username" gorm:"type:varchar(100);not null" validate:"required"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	Balance  int64  `json:"balance" gorm:"not null"`
}
