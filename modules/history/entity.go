package history

import "time"

// Evaluation is one recorded expression evaluation.
type Evaluation struct {
	ID         string    `gorm:"primarykey;size:36" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Expression string    `gorm:"size:500;not null" json:"expression"`
	Result     string    `gorm:"size:100" json:"result,omitempty"`
	ErrorCode  string    `gorm:"size:50" json:"error_code,omitempty"`
}

// TableName returns the table name for the Evaluation model.
func (Evaluation) TableName() string {
	return "evaluations"
}
