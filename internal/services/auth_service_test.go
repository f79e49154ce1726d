package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/report_admin/internal/auth"
	"github.com/report_admin/internal/services"
	"github.com/report_admin/internal/testutil"
)

func TestSaveOperatorAndLogin(t *testing.T) {
	store := testutil.NewGormStore(t)
	ctx := context.Background()
	svc := services.NewAuthService(store.Operators, "test-secret")

	op, err := svc.SaveOperator(ctx, services.OperatorInput{
		Username:    "dana",
		Password:    "correct horse",
		DisplayName: "Dana",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", op.Role)
	assert.NotEqual(t, "correct horse", op.PasswordHash)

	result, err := svc.Login(ctx, "dana", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, op.ID, result.Operator.ID)

	claims, err := auth.ParseToken("test-secret", result.Token)
	require.NoError(t, err)
	assert.Equal(t, "dana", claims.Username)
	assert.Equal(t, "Dana", claims.DisplayName)
	assert.NotEmpty(t, claims.ID)

	_, err = svc.Login(ctx, "dana", "wrong password")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody", "correct horse")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestSaveOperatorValidation(t *testing.T) {
	store := testutil.NewGormStore(t)
	svc := services.NewAuthService(store.Operators, "test-secret")

	_, err := svc.SaveOperator(context.Background(), services.OperatorInput{Username: " ", Password: "long enough"})
	assert.ErrorIs(t, err, services.ErrValidation)
	_, err = svc.SaveOperator(context.Background(), services.OperatorInput{Username: "dana", Password: "short"})
	assert.ErrorIs(t, err, services.ErrValidation)
	_, err = svc.SaveOperator(context.Background(), services.OperatorInput{Username: "dana", Password: "long enough", Email: "not-an-email"})
	assert.ErrorIs(t, err, services.ErrValidation)
}
