package entities

import "time"

const (
	RoutineMorning = "morning"
	RoutineEvening = "evening"
)

// RoutineItem is one slot in a user's skincare routine. Updates replace
// the whole routine for a user in a single transaction.
type RoutineItem struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"index;not null"`
	ProductID  uint   `gorm:"not null"`
	TimeOfDay  string `gorm:"type:varchar(10);not null"`
	OrderIndex int    `gorm:"not null"`
	CreatedAt  time.Time
}

// AIAnalysis stores the inputs and result of each AI request for later
// reference.
type AIAnalysis struct {
	ID           uint    `gorm:"primaryKey"`
	UserID       uint    `gorm:"index;not null"`
	AnalysisType string  `gorm:"type:varchar(40);not null"`
	InputData    JSONMap `gorm:"type:text"`
	Result       JSONMap `gorm:"type:text"`
	CreatedAt    time.Time
}
