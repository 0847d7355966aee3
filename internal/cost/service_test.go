package cost_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    cost.CreateParams
		setupMock func(m *cost.MockRepository)
		wantErr   error
	}

	projectID := uuid.New()

	tests := []testCase{
		{
			name: "Success",
			params: cost.CreateParams{
				ProjectID:    projectID,
				Description:  "Verhuiswagen huren",
				AmountCents:  15000,
				PaidByID:     anna,
				SplitBetween: []uuid.UUID{anna, bram},
				Date:         time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
				Category:     cost.CategoryVerhuizing,
			},
			setupMock: func(m *cost.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *cost.Expense) error {
						e.ID = uuid.New()
						e.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "ZeroAmount",
			params: cost.CreateParams{
				AmountCents:  0,
				SplitBetween: []uuid.UUID{anna},
			},
			wantErr: cost.ErrInvalidAmount,
		},
		{
			name: "NegativeAmount",
			params: cost.CreateParams{
				AmountCents:  -500,
				SplitBetween: []uuid.UUID{anna},
			},
			wantErr: cost.ErrInvalidAmount,
		},
		{
			name: "EmptySplit",
			params: cost.CreateParams{
				AmountCents: 500,
			},
			wantErr: cost.ErrEmptySplit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := cost.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := cost.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_Settlements(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := cost.NewMockRepository(ctrl)
	svc := cost.NewService(repo)

	projectID := uuid.New()
	people := []uuid.UUID{anna, bram}

	repo.EXPECT().
		ListExpenses(gomock.Any(), cost.ListFilter{ProjectID: &projectID}).
		Return([]*cost.Expense{
			expense(1000, anna, anna, bram),
		}, nil)

	settlements, err := svc.Settlements(context.Background(), projectID, people)
	require.NoError(t, err)

	assert.Equal(t, []cost.Settlement{
		{FromID: bram, ToID: anna, AmountCents: 500},
	}, settlements)
}

func TestService_Settlements_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := cost.NewMockRepository(ctrl)
	svc := cost.NewService(repo)

	projectID := uuid.New()

	repo.EXPECT().
		ListExpenses(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db error"))

	_, err := svc.Settlements(context.Background(), projectID, nil)
	assert.Error(t, err)
}

func TestService_CreateBatch_ValidatesEveryExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := cost.NewMockRepository(ctrl)
	svc := cost.NewService(repo)

	params := []cost.CreateParams{
		{AmountCents: 1000, SplitBetween: []uuid.UUID{anna}},
		{AmountCents: -1, SplitBetween: []uuid.UUID{anna}},
	}

	_, err := svc.CreateBatch(context.Background(), params)
	assert.ErrorIs(t, err, cost.ErrInvalidAmount)
}

func TestService_CreateBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := cost.NewMockRepository(ctrl)
	svc := cost.NewService(repo)

	es, err := svc.CreateBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, es)
}
