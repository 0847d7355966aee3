package share

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("super-secret", time.Hour)
	projectID := uuid.New()

	token, err := svc.Issue(projectID)
	require.NoError(t, err)

	got, err := svc.Verify(token)

	require.NoError(t, err)
	assert.Equal(t, projectID, got)
}

func TestVerify_Expired(t *testing.T) {
	svc := NewService("super-secret", time.Hour)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = svc.Verify(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewService("right-secret", time.Hour).Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewService("wrong-secret", time.Hour).Verify(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	svc := NewService("secret", time.Hour)

	_, err := svc.Verify("not.a.token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSharingDisabled(t *testing.T) {
	svc := NewService("", time.Hour)

	assert.False(t, svc.Enabled())

	_, err := svc.Issue(uuid.New())
	assert.ErrorIs(t, err, ErrSharingDisabled)

	_, err = svc.Verify("whatever")
	assert.ErrorIs(t, err, ErrSharingDisabled)
}
