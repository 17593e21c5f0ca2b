package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/model"
)

func TestSession_FlashesArePoppedOnce(t *testing.T) {
	sess := NewSession()
	assert.False(t, sess.Modified())

	sess.Flash(FlashInfo, "one")
	sess.Flash(FlashError, "two")
	assert.True(t, sess.Modified())

	flashes := sess.PopFlashes()
	assert.Equal(t, []Flash{{FlashInfo, "one"}, {FlashError, "two"}}, flashes)
	assert.Nil(t, sess.PopFlashes())
}

func TestSession_LoginRotatesID(t *testing.T) {
	sess := &Session{ID: "stored-id"}

	sess.Login(7, model.RoleAdmin)

	assert.NotEqual(t, "stored-id", sess.ID)
	assert.Equal(t, "stored-id", sess.PreviousID())
	assert.True(t, sess.Fresh())
	assert.True(t, sess.LoggedIn)
	assert.Equal(t, uint(7), sess.UserID)
	assert.Equal(t, model.RoleAdmin, sess.Role)
}

func TestSession_LoginOnNewSessionHasNoPreviousID(t *testing.T) {
	sess := NewSession()
	sess.Login(1, model.RoleUser)
	assert.Empty(t, sess.PreviousID())
}

func TestSession_Logout(t *testing.T) {
	sess := &Session{ID: "id", LoggedIn: true, UserID: 3, Role: model.RoleUser}

	sess.Logout()

	assert.False(t, sess.LoggedIn)
	assert.Zero(t, sess.UserID)
	assert.Empty(t, sess.Role)
	assert.True(t, sess.Modified())
	assert.Equal(t, Anonymous, PrincipalOf(sess))
}

func TestPrincipal_CanModify(t *testing.T) {
	task := &model.Task{UserID: 1}

	tests := []struct {
		name      string
		principal Principal
		want      bool
	}{
		{"owner", Principal{Authenticated: true, UserID: 1, Role: model.RoleUser}, true},
		{"other user", Principal{Authenticated: true, UserID: 2, Role: model.RoleUser}, false},
		{"admin", Principal{Authenticated: true, UserID: 2, Role: model.RoleAdmin}, true},
		{"anonymous", Anonymous, false},
		{"unauthenticated admin role", Principal{UserID: 2, Role: model.RoleAdmin}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.principal.CanModify(task))
		})
	}
	assert.False(t, Principal{Authenticated: true, UserID: 1}.CanModify(nil))
}
