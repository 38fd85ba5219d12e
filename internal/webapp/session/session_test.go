package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureSID_AssignsOnce(t *testing.T) {
	sess := &Session{}

	sid, assigned := sess.EnsureSID()
	assert.True(t, assigned)
	assert.NotEmpty(t, sid)

	// idempotent: the id never changes once set
	again, assigned := sess.EnsureSID()
	assert.False(t, assigned)
	assert.Equal(t, sid, again)
}

func TestEnsureSID_Unique(t *testing.T) {
	a := &Session{}
	b := &Session{}

	sidA, _ := a.EnsureSID()
	sidB, _ := b.EnsureSID()

	assert.NotEqual(t, sidA, sidB)
}

func TestAuthenticate_KeepsAnonymousID(t *testing.T) {
	sess := &Session{SID: "session-x"}

	sess.Authenticate("poet")

	assert.True(t, sess.IsAdmin)
	assert.Equal(t, "poet", sess.Username)
	assert.Equal(t, "session-x", sess.SID)
}
