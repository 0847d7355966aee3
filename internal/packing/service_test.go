package packing_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/verhuizer/internal/packing"
)

func TestService_CreateBox_NumbersAreSequential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := packing.NewMockRepository(ctrl)
	svc := packing.NewService(repo)

	roomID := uuid.New()

	repo.EXPECT().MaxBoxNumber(gomock.Any(), roomID).Return(0, nil)
	repo.EXPECT().
		CreateBox(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, box *packing.Box) error {
			box.ID = uuid.New()
			return nil
		})

	box, err := svc.CreateBox(context.Background(), packing.CreateBoxParams{RoomID: roomID})
	require.NoError(t, err)

	assert.Equal(t, 1, box.Number)
	assert.Equal(t, packing.BoxStatusEmpty, box.Status)
	assert.Equal(t, packing.PriorityMedium, box.Priority)
}

func TestService_CreateBox_GapsAreNotReused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := packing.NewMockRepository(ctrl)
	svc := packing.NewService(repo)

	roomID := uuid.New()

	// Boxes 1..7 existed and some were deleted; the counter keeps growing.
	repo.EXPECT().MaxBoxNumber(gomock.Any(), roomID).Return(7, nil)
	repo.EXPECT().CreateBox(gomock.Any(), gomock.Any()).Return(nil)

	box, err := svc.CreateBox(context.Background(), packing.CreateBoxParams{
		RoomID:   roomID,
		Priority: packing.PriorityHigh,
	})
	require.NoError(t, err)

	assert.Equal(t, 8, box.Number)
	assert.Equal(t, packing.PriorityHigh, box.Priority)
}

func TestService_CreateRoom_OrderFollowsExistingRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := packing.NewMockRepository(ctrl)
	svc := packing.NewService(repo)

	projectID := uuid.New()

	repo.EXPECT().ListRooms(gomock.Any(), projectID).Return([]*packing.Room{{}, {}}, nil)
	repo.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).Return(nil)

	room, err := svc.CreateRoom(context.Background(), packing.CreateRoomParams{
		ProjectID: projectID,
		Name:      "Zolder",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, room.Order)
	assert.Equal(t, packing.RoomTypeOverig, room.RoomType)
}

func TestService_AddItem_OrderIsInsertionCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := packing.NewMockRepository(ctrl)
	svc := packing.NewService(repo)

	boxID := uuid.New()

	repo.EXPECT().CountBoxItems(gomock.Any(), boxID).Return(3, nil)
	repo.EXPECT().CreateBoxItem(gomock.Any(), gomock.Any()).Return(nil)

	item, err := svc.AddItem(context.Background(), packing.CreateBoxItemParams{
		BoxID:       boxID,
		Description: "Boeken",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, item.Order)
	assert.Equal(t, 1, item.Quantity)
}

func TestService_Rooms_SortedByOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := packing.NewMockRepository(ctrl)
	svc := packing.NewService(repo)

	projectID := uuid.New()

	repo.EXPECT().ListRooms(gomock.Any(), projectID).Return([]*packing.Room{
		{Name: "Keuken", Order: 2},
		{Name: "Hal", Order: 0},
		{Name: "Woonkamer", Order: 5},
	}, nil)

	rooms, err := svc.Rooms(context.Background(), projectID)
	require.NoError(t, err)

	names := make([]string, len(rooms))
	for i, r := range rooms {
		names[i] = r.Name
	}

	assert.Equal(t, []string{"Hal", "Keuken", "Woonkamer"}, names)
}
