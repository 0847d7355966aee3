package cost

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_ImportBatch_NoConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	projectID := uuid.New()
	payer := uuid.New()
	date := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	params := []CreateParams{
		{ProjectID: projectID, Description: "verf", AmountCents: 4500, PaidByID: payer, SplitBetween: []uuid.UUID{payer}, Date: date},
		{ProjectID: projectID, Description: "kwasten", AmountCents: 1200, PaidByID: payer, SplitBetween: []uuid.UUID{payer}, Date: date},
	}

	repo.EXPECT().ListExpenses(ctx, gomock.Any()).Return(nil, nil)
	repo.EXPECT().CreateExpenses(ctx, gomock.Any()).Return(nil)

	result, err := svc.ImportBatch(ctx, params)

	require.NoError(t, err)
	assert.Len(t, result.Imported, 2)
	assert.Empty(t, result.Conflicts)
}

func TestService_ImportBatch_Conflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	projectID := uuid.New()
	payer := uuid.New()
	date := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	stored := &Expense{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Description: "verf",
		AmountCents: 4500,
		Date:        date,
	}

	params := []CreateParams{
		{ProjectID: projectID, Description: "verf", AmountCents: 4500, PaidByID: payer, SplitBetween: []uuid.UUID{payer}, Date: date},
		{ProjectID: projectID, Description: "kwasten", AmountCents: 1200, PaidByID: payer, SplitBetween: []uuid.UUID{payer}, Date: date},
	}

	// With a duplicate in the batch nothing is written.
	repo.EXPECT().ListExpenses(ctx, gomock.Any()).Return([]*Expense{stored}, nil)

	result, err := svc.ImportBatch(ctx, params)

	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, stored, result.Conflicts[0].Existing)
	require.Len(t, result.New, 1)
	assert.Equal(t, "kwasten", result.New[0].Description)
}

func TestService_ImportBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	result, err := svc.ImportBatch(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Empty(t, result.Conflicts)
}
