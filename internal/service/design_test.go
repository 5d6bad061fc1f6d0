package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atelier-ai/atelier-server/internal/mocks"
	"github.com/atelier-ai/atelier-server/internal/model"
	"github.com/atelier-ai/atelier-server/internal/testutil"
)

func designFixture(userID uuid.UUID) (*mocks.HierarchyStore, *mocks.GenerationClient, *Design) {
	hierarchyStore := &mocks.HierarchyStore{}
	client := &mocks.GenerationClient{}
	log := testutil.MakeNoopLogger()
	hierarchy := NewHierarchy(hierarchyStore, &mocks.UserStore{}, nil, log)
	return hierarchyStore, client, NewDesign(hierarchy, client, log)
}

func TestDesign_Interior_InlineAttributes(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	_, client, design := designFixture(userID)

	client.On("GenerateImage", mock.Anything, "Modern Kitchen with white theme and island").
		Return(json.RawMessage(`{"data":[]}`), nil)

	raw, err := design.Interior(ctx, userID, InteriorParams{
		RoomName:  "Kitchen",
		Style:     "Modern",
		Color:     "white",
		Furniture: "island",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(raw))
	client.AssertExpectations(t)
}

func TestDesign_Interior_StoredRoom(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	hierarchyStore, client, design := designFixture(userID)

	hierarchyStore.On("List", mock.Anything, userID).Return(model.Hierarchy{
		UserID: userID,
		Floors: []model.Floor{
			{Name: "Ground", Rooms: []model.Room{
				{Name: "Kitchen", Style: "Modern", Color: "white", Furniture: "island"},
			}},
		},
	}, nil)
	client.On("GenerateImage", mock.Anything, "Modern Kitchen with white theme and island").
		Return(json.RawMessage(`{"data":[]}`), nil)

	_, err := design.Interior(ctx, userID, InteriorParams{Floor: "Ground", Room: "Kitchen"})
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestDesign_Interior_RoomNotFound(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	hierarchyStore, _, design := designFixture(userID)

	hierarchyStore.On("List", mock.Anything, userID).Return(model.Hierarchy{UserID: userID, Floors: []model.Floor{}}, nil)

	_, err := design.Interior(ctx, userID, InteriorParams{Floor: "Ground", Room: "Kitchen"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDesign_Plan2D(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	_, client, design := designFixture(userID)

	client.On("Reason", mock.Anything, "three bedrooms around a hallway").
		Return(json.RawMessage(`{"choices":[]}`), nil)

	raw, err := design.Plan2D(ctx, userID, "three bedrooms around a hallway")
	require.NoError(t, err)
	assert.JSONEq(t, `{"choices":[]}`, string(raw))
}

func TestDesign_Plan2D_EmptyDescription(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	_, _, design := designFixture(userID)

	_, err := design.Plan2D(ctx, userID, "")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestDesign_Render3D(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	hierarchyStore, client, design := designFixture(userID)

	hierarchyStore.On("List", mock.Anything, userID).Return(model.Hierarchy{
		UserID: userID,
		Floors: []model.Floor{
			{Name: "Ground", Rooms: []model.Room{
				{Name: "Bedroom", Style: "Minimal", Dimensions: "4x5", Color: "beige", Furniture: "platform bed"},
			}},
		},
	}, nil)
	client.On("GenerateImage", mock.Anything, "3D render of a Minimal Bedroom (4x5) with beige theme and platform bed").
		Return(json.RawMessage(`{"data":[]}`), nil)

	_, err := design.Render3D(ctx, userID, "Ground", "Bedroom")
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestDesign_Exterior(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	_, client, design := designFixture(userID)

	client.On("GenerateImage", mock.Anything, "brick facade with a gabled roof").
		Return(json.RawMessage(`{"data":[]}`), nil)

	_, err := design.Exterior(ctx, userID, "brick facade with a gabled roof")
	require.NoError(t, err)
}

func TestDesign_UpstreamErrorPassesThrough(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	_, client, design := designFixture(userID)

	upstreamErr := &model.UpstreamError{StatusCode: 429, Body: json.RawMessage(`{"error":"rate limited"}`)}
	client.On("GenerateImage", mock.Anything, mock.Anything).Return(nil, upstreamErr)

	_, err := design.Exterior(ctx, userID, "anything")
	require.Error(t, err)

	var ue *model.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, 429, ue.StatusCode)
}
