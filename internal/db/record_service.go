package db

import (
	"fmt"
	"time"

	"github.com/balkashynov/tomato/internal/models"
	"github.com/balkashynov/tomato/internal/pomodoro"
)

// RecordCompletion stores a naturally completed phase
func RecordCompletion(done pomodoro.Completion, length time.Duration, at time.Time) (*models.PhaseRecord, error) {
	if DB == nil {
		return nil, ErrNotInitialized
	}

	record := models.PhaseRecord{
		Phase:           done.Phase.String(),
		Session:         done.Session,
		DurationSeconds: int(length / time.Second),
		CompletedAt:     at,
	}

	if err := DB.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to record %s completion: %w", done.Phase, err)
	}

	return &record, nil
}

// GetRecordsInRange returns all records completed within the range, oldest first
func GetRecordsInRange(startTime, endTime time.Time) ([]models.PhaseRecord, error) {
	if DB == nil {
		return nil, ErrNotInitialized
	}

	var records []models.PhaseRecord
	err := DB.Where("completed_at >= ? AND completed_at <= ?", startTime, endTime).
		Order("completed_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// GetRecentRecords returns the latest records, newest first
func GetRecentRecords(limit int) ([]models.PhaseRecord, error) {
	if DB == nil {
		return nil, ErrNotInitialized
	}

	var records []models.PhaseRecord
	query := DB.Order("completed_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// CountFocusSince returns how many focus phases completed at or after since
func CountFocusSince(since time.Time) (int64, error) {
	if DB == nil {
		return 0, ErrNotInitialized
	}

	var count int64
	err := DB.Model(&models.PhaseRecord{}).
		Where("phase = ? AND completed_at >= ?", pomodoro.Focus.String(), since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
