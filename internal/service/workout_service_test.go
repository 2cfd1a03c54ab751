package service

import (
	"context"
	"testing"

	"onemore-backend/internal/dto"
	"onemore-backend/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListWorkoutLogs(t *testing.T) {
	ctx := context.Background()
	svc := NewWorkoutService(newTestStore(t))
	user := testUser("u1", "Ana")

	_, err := svc.CreateLog(ctx, user, &dto.CreateWorkoutLogRequest{Title: "  "})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperror.From(err).Code)

	created, err := svc.CreateLog(ctx, user, &dto.CreateWorkoutLogRequest{Title: "Push", Duration: 60, Volume: 3240, Calories: 450})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Log.Id)
	assert.NotNil(t, created.Log.Exercises)

	_, err = svc.CreateLog(ctx, testUser("u2", "Bob"), &dto.CreateWorkoutLogRequest{Title: "Pull"})
	require.NoError(t, err)

	res, err := svc.ListLogs(ctx, user, "")
	require.NoError(t, err)
	require.Len(t, res.Logs, 1)
	assert.Equal(t, "Push", res.Logs[0].Title)

	none, err := svc.ListLogs(ctx, user, "1999-01")
	require.NoError(t, err)
	assert.Empty(t, none.Logs)
}
