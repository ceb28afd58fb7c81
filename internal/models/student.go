package models

import "time"

// Student is the structured record behind fee, dashboard and attendance lookups.
type Student struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	FeesTotal         float64            `json:"fees_total"`
	FeesPaid          float64            `json:"fees_paid"`
	FeesDueDate       *time.Time         `json:"fees_due_date"`
	Marks             map[string]float64 `json:"marks"`
	AttendancePercent float64            `json:"attendance_percent"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// FeesDue returns the outstanding fee amount, never negative.
func (s *Student) FeesDue() float64 {
	if due := s.FeesTotal - s.FeesPaid; due > 0 {
		return due
	}
	return 0
}

// AverageMark returns the mean of all recorded marks, or 0 when none exist.
func (s *Student) AverageMark() float64 {
	if len(s.Marks) == 0 {
		return 0
	}
	var sum float64
	for _, m := range s.Marks {
		sum += m
	}
	return sum / float64(len(s.Marks))
}
