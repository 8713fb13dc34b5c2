package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/repository"
)

// mockActivityRepo implements repository.ActivityLogRepo in memory
type mockActivityRepo struct {
	entries []*model.ActivityLog
}

func (m *mockActivityRepo) Insert(ctx context.Context, entry *model.ActivityLog) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockActivityRepo) List(ctx context.Context, filter repository.ActivityFilter) ([]*model.ActivityLog, int64, error) {
	return m.entries, int64(len(m.entries)), nil
}

func newTestAuthService() (*AuthService, *mockActivityRepo) {
	aRepo := &mockActivityRepo{}
	svc := NewAuthService("admin", "s3cret", "test-signing-key", NewActivityService(aRepo))
	return svc, aRepo
}

func TestLoginAdmin(t *testing.T) {
	svc, _ := newTestAuthService()

	resp, err := svc.Login(context.Background(), "admin", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, resp.Role)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestLoginAdminWrongPassword(t *testing.T) {
	svc, aRepo := newTestAuthService()

	_, err := svc.Login(context.Background(), "admin", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, aRepo.entries, "failed logins are not audited")
}

func TestLoginParticipantFreshIdentity(t *testing.T) {
	svc, _ := newTestAuthService()

	first, err := svc.Login(context.Background(), "marie", "")
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), "marie", "")
	require.NoError(t, err)

	assert.Equal(t, model.RoleParticipant, first.Role)
	assert.NotEqual(t, first.UserID, second.UserID)
}

func TestLoginRecordsActivity(t *testing.T) {
	svc, aRepo := newTestAuthService()

	resp, err := svc.Login(context.Background(), "marie", "")
	require.NoError(t, err)

	require.Len(t, aRepo.entries, 1)
	entry := aRepo.entries[0]
	assert.Equal(t, model.ActionLogin, entry.Action)
	assert.Equal(t, model.EntityUser, entry.EntityType)
	assert.Equal(t, resp.UserID, entry.UserID)
	assert.Equal(t, "marie", entry.Details["username"])
}
