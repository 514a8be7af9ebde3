package models

import (
	"time"

	"gorm.io/gorm"
)

// PhaseRecord is one naturally completed phase in the history log
type PhaseRecord struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Phase           string    `gorm:"not null;index" json:"phase"` // focus, short_break, long_break
	Session         int       `gorm:"not null" json:"session"`
	DurationSeconds int       `json:"duration_seconds"` // configured length of the phase
	CompletedAt     time.Time `gorm:"not null;index" json:"completed_at"`
}

// Duration returns the recorded phase length
func (r PhaseRecord) Duration() time.Duration {
	return time.Duration(r.DurationSeconds) * time.Second
}
