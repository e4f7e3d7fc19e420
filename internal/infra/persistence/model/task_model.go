package model

import "time"

// TaskModel mirrors the 'tasks' table. The owner column is nullable: a task
// may exist unowned, and the FK constrains it to users.user_id when set.
type TaskModel struct {
	ID          int64   `gorm:"column:task_id;primaryKey;autoIncrement"`
	Title       string  `gorm:"column:task_title;type:varchar(255);not null"`
	Description *string `gorm:"column:task_description;type:text"`
	IsRead      bool    `gorm:"column:is_read;not null;default:false"`
	OwnerID     *int64  `gorm:"column:user_id;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
