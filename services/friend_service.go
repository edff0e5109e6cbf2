package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"astra_server/models"
	"astra_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// FriendService manages a user's friend list and pending connection requests
type FriendService struct {
	Dynamo *DynamoService
}

// ListFriends retrieves all friend profiles for a user
func (fs *FriendService) ListFriends(ctx context.Context, userID string) ([]models.FriendProfile, error) {
	var friends []models.FriendProfile
	err := fs.Dynamo.QueryItemsInto(ctx, models.FriendProfilesTable,
		"userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		&friends,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends for user %s: %w", userID, err)
	}
	return friends, nil
}

// GetFriend retrieves a single friend profile. A missing friend is returned
// as (nil, nil).
func (fs *FriendService) GetFriend(ctx context.Context, userID string, friendID int) (*models.FriendProfile, error) {
	item, err := fs.Dynamo.GetItem(ctx, models.FriendProfilesTable, friendKey(userID, friendID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var friend models.FriendProfile
	if err := attributevalue.UnmarshalMap(item, &friend); err != nil {
		return nil, fmt.Errorf("failed to unmarshal friend profile: %w", err)
	}
	return &friend, nil
}

// SaveFriend stores a friend profile, replacing any existing entry with the
// same id. Profiles are immutable in the service layer; updates happen by
// replacing the whole entry. Element and modality are derived from the sun
// sign when the caller leaves them empty.
func (fs *FriendService) SaveFriend(ctx context.Context, userID string, profile models.FriendProfile) error {
	profile.UserID = userID
	if profile.Element == "" {
		profile.Element = utils.ElementForSign(profile.SunSign)
	}
	if profile.Modality == "" {
		profile.Modality = utils.ModalityForSign(profile.SunSign)
	}
	return fs.Dynamo.PutItem(ctx, models.FriendProfilesTable, profile)
}

// RemoveFriend deletes a friend profile from the user's list
func (fs *FriendService) RemoveFriend(ctx context.Context, userID string, friendID int) error {
	return fs.Dynamo.DeleteItem(ctx, models.FriendProfilesTable, friendKey(userID, friendID))
}

// SetFriendPresence updates the online flag on a stored friend profile by
// replacing the entry. A presence event for a friend not in the list is
// ignored.
func (fs *FriendService) SetFriendPresence(ctx context.Context, userID string, friendID int, online bool) error {
	friend, err := fs.GetFriend(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if friend == nil {
		return nil
	}

	friend.Online = online
	return fs.SaveFriend(ctx, userID, *friend)
}

// CreatePendingRequest records an incoming connection request
func (fs *FriendService) CreatePendingRequest(ctx context.Context, userID string, profile models.FriendProfile) (*models.PendingRequest, error) {
	request := models.PendingRequest{
		UserID:    userID,
		RequestID: uuid.NewString(),
		Profile:   profile,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := fs.Dynamo.PutItem(ctx, models.PendingRequestsTable, request); err != nil {
		return nil, err
	}
	return &request, nil
}

// ListPendingRequests retrieves the user's pending connection requests
func (fs *FriendService) ListPendingRequests(ctx context.Context, userID string) ([]models.PendingRequest, error) {
	var requests []models.PendingRequest
	err := fs.Dynamo.QueryItemsInto(ctx, models.PendingRequestsTable,
		"userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		&requests,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests for user %s: %w", userID, err)
	}
	return requests, nil
}

// AcceptRequest moves a pending request's profile into the friend list and
// deletes the request. Returns the accepted profile, or (nil, nil) when the
// request does not exist.
func (fs *FriendService) AcceptRequest(ctx context.Context, userID, requestID string) (*models.FriendProfile, error) {
	item, err := fs.Dynamo.GetItem(ctx, models.PendingRequestsTable, requestKey(userID, requestID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var request models.PendingRequest
	if err := attributevalue.UnmarshalMap(item, &request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending request: %w", err)
	}

	if err := fs.SaveFriend(ctx, userID, request.Profile); err != nil {
		return nil, err
	}
	if err := fs.Dynamo.DeleteItem(ctx, models.PendingRequestsTable, requestKey(userID, requestID)); err != nil {
		return nil, err
	}

	return &request.Profile, nil
}

// DeclineRequest deletes a pending request without adding the profile
func (fs *FriendService) DeclineRequest(ctx context.Context, userID, requestID string) error {
	return fs.Dynamo.DeleteItem(ctx, models.PendingRequestsTable, requestKey(userID, requestID))
}

func friendKey(userID string, friendID int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
		"id":     &types.AttributeValueMemberN{Value: strconv.Itoa(friendID)},
	}
}

func requestKey(userID, requestID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId":    &types.AttributeValueMemberS{Value: userID},
		"requestId": &types.AttributeValueMemberS{Value: requestID},
	}
}
