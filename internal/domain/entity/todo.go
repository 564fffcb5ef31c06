package entity

// TodoItem is the single persisted resource, mapped to the todos table
type TodoItem struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Description string `json:"description" gorm:"type:varchar(255);not null"`
	Completed   bool   `json:"completed" gorm:"not null;default:false"`
}

func (TodoItem) TableName() string {
	return "todos"
}
