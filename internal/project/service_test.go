package project

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo, nil)
	ctx := context.Background()

	repo.EXPECT().CreateProject(ctx, gomock.Any()).Return(nil)

	created, err := svc.Create(ctx, CreateParams{
		Name:       "Verhuizing Amsterdam",
		MovingDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		NewAddress: Address{Street: "Keizersgracht", HouseNumber: "42", PostalCode: "1015 CR", City: "Amsterdam"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Verhuizing Amsterdam", created.Name)
	assert.Nil(t, created.CurrentAddress)
}

func TestService_Create_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), CreateParams{})

	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestService_AddPerson(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo, nil)
	ctx := context.Background()

	projectID := uuid.New()

	repo.EXPECT().CreatePerson(ctx, gomock.Any()).Return(nil)

	person, err := svc.AddPerson(ctx, projectID, "Anna", "#e74c3c")

	require.NoError(t, err)
	assert.Equal(t, projectID, person.ProjectID)
	assert.Equal(t, "Anna", person.Name)
}

func TestService_AddPerson_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo, nil)

	_, err := svc.AddPerson(context.Background(), uuid.New(), "", "")

	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestService_ResolveAddress_NoClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo, nil)

	in := Address{PostalCode: "1015 CR", HouseNumber: "42"}

	out, err := svc.ResolveAddress(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, in, out)
}
