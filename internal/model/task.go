package model

import "time"

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusOpen   TaskStatus = "open"
	TaskStatusClosed TaskStatus = "closed"
)

// Priority is the importance a user assigns to a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the accepted values in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Task represents a to-do item owned by a single user.
type Task struct {
	ID       uint       `json:"id" gorm:"primaryKey"`
	Name     string     `json:"name" gorm:"size:255;not null"`
	DueDate  time.Time  `json:"due_date" gorm:"type:date;not null;index"`
	Priority Priority   `json:"priority" gorm:"type:varchar(10);not null"`
	PostedAt time.Time  `json:"posted_at" gorm:"not null"`
	Status   TaskStatus `json:"status" gorm:"type:varchar(10);not null;default:'open';index"`
	UserID   uint       `json:"user_id" gorm:"not null;index"`

	// Relations
	Owner User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// IsOpen reports whether the task has not been completed yet.
func (t Task) IsOpen() bool {
	return t.Status == TaskStatusOpen
}
