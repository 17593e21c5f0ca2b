package form

import (
	"strings"
	"time"

	"taskboard/internal/model"
)

// DateLayout is the wire format of task due dates.
const DateLayout = "2006-01-02"

// LoginForm is posted by the login page.
type LoginForm struct {
	Name     string `form:"name" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm is posted by the registration page.
type RegisterForm struct {
	Name     string `form:"name" validate:"required,min=3,max=25"`
	Email    string `form:"email" validate:"required,email,max=40"`
	Password string `form:"password" validate:"required,min=3,max=40"`
	Confirm  string `form:"confirm" validate:"omitempty,eqfield=Password"`
}

// ClearSecrets drops the password fields so they are never echoed back.
func (f *RegisterForm) ClearSecrets() {
	f.Password = ""
	f.Confirm = ""
}

// AddTaskForm is posted by the task list page.
type AddTaskForm struct {
	Name     string `form:"name" validate:"required,max=255"`
	DueDate  string `form:"due_date" validate:"required,datetime=2006-01-02"`
	Priority string `form:"priority" validate:"required,oneof=low medium high"`
}

// Normalize trims surrounding whitespace from the free-text fields.
func (f *AddTaskForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.DueDate = strings.TrimSpace(f.DueDate)
	f.Priority = strings.ToLower(strings.TrimSpace(f.Priority))
}

// Due parses DueDate. Call it only after validation.
func (f AddTaskForm) Due() (time.Time, error) {
	return time.ParseInLocation(DateLayout, f.DueDate, time.UTC)
}

// PriorityValue returns Priority as a model value.
func (f AddTaskForm) PriorityValue() model.Priority {
	return model.Priority(f.Priority)
}
