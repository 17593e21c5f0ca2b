package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator()
	require.NoError(t, err)
	return v
}

func TestValidator_LoginForm(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Validate(&LoginForm{Name: "alice", Password: "pw"}))

	err := v.Validate(&LoginForm{})
	fieldErrs, ok := AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "name is a required field", fieldErrs["name"])
	assert.Contains(t, fieldErrs, "password")
}

func TestValidator_RegisterForm(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name   string
		form   RegisterForm
		fields []string
	}{
		{"valid", RegisterForm{Name: "alice", Email: "a@example.com", Password: "pwd", Confirm: "pwd"}, nil},
		{"confirm is optional", RegisterForm{Name: "alice", Email: "a@example.com", Password: "pwd"}, nil},
		{"short name", RegisterForm{Name: "al", Email: "a@example.com", Password: "pwd"}, []string{"name"}},
		{"bad email", RegisterForm{Name: "alice", Email: "nope", Password: "pwd"}, []string{"email"}},
		{"mismatched confirm", RegisterForm{Name: "alice", Email: "a@example.com", Password: "pwd", Confirm: "pwx"}, []string{"confirm"}},
		{"empty", RegisterForm{}, []string{"name", "email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.form)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			fieldErrs, ok := AsErrors(err)
			require.True(t, ok)
			assert.Len(t, fieldErrs, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, fieldErrs, f)
			}
		})
	}
}

func TestValidator_CustomMessages(t *testing.T) {
	v := newValidator(t)

	fieldErrs, _ := AsErrors(v.Validate(&AddTaskForm{Name: "x", DueDate: "03/10/2026", Priority: "high"}))
	assert.Equal(t, "due_date must be a date formatted as YYYY-MM-DD", fieldErrs["due_date"])

	fieldErrs, _ = AsErrors(v.Validate(&RegisterForm{Name: "alice", Email: "a@example.com", Password: "abc", Confirm: "abd"}))
	assert.Equal(t, "passwords must match", fieldErrs["confirm"])
}

func TestValidator_AddTaskForm(t *testing.T) {
	v := newValidator(t)

	f := AddTaskForm{Name: "  Buy milk ", DueDate: " 2026-03-10", Priority: "HIGH "}
	f.Normalize()
	require.NoError(t, v.Validate(&f))

	due, err := f.Due()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), due)
	assert.Equal(t, model.PriorityHigh, f.PriorityValue())
	assert.Equal(t, "Buy milk", f.Name)

	fieldErrs, ok := AsErrors(v.Validate(&AddTaskForm{Name: "x", DueDate: "2026-03-10", Priority: "urgent"}))
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "priority")
}

func TestErrors_Error(t *testing.T) {
	e := Errors{"name": "b", "email": "a"}
	assert.Equal(t, "a; b", e.Error())
}

func TestRegisterForm_ClearSecrets(t *testing.T) {
	f := RegisterForm{Name: "alice", Password: "p", Confirm: "p"}
	f.ClearSecrets()
	assert.Equal(t, "alice", f.Name)
	assert.Empty(t, f.Password)
	assert.Empty(t, f.Confirm)
}
