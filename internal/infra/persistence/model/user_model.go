package model

import "time"

// UserModel mirrors the 'users' table. PostgreSQL generates IDs via bigserial.
type UserModel struct {
	ID           int64     `gorm:"column:user_id;primaryKey;autoIncrement"`
	FirstName    string    `gorm:"column:first_name;type:varchar(100);not null"`
	LastName     string    `gorm:"column:last_name;type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
