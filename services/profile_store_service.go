package services

import (
	"context"
	"fmt"

	"astra_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ProfileStoreService persists the per-user records the app reads at startup:
// birth data, playlist genre preferences and notification preferences. Loads
// of missing records return (nil, nil).
type ProfileStoreService struct {
	Dynamo *DynamoService
}

// LoadBirthData retrieves the user's saved birth data
func (ps *ProfileStoreService) LoadBirthData(ctx context.Context, userID string) (*models.BirthData, error) {
	item, err := ps.Dynamo.GetItem(ctx, models.BirthDataTable, userKey(userID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var data models.BirthData
	if err := attributevalue.UnmarshalMap(item, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal birth data: %w", err)
	}
	return &data, nil
}

// SaveBirthData stores the user's birth data, replacing any existing record
func (ps *ProfileStoreService) SaveBirthData(ctx context.Context, userID string, data models.BirthData) error {
	data.UserID = userID
	return ps.Dynamo.PutItem(ctx, models.BirthDataTable, data)
}

// LoadGenres retrieves the user's saved genre preferences
func (ps *ProfileStoreService) LoadGenres(ctx context.Context, userID string) (*models.GenrePreferences, error) {
	item, err := ps.Dynamo.GetItem(ctx, models.GenrePreferencesTable, userKey(userID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var prefs models.GenrePreferences
	if err := attributevalue.UnmarshalMap(item, &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal genre preferences: %w", err)
	}
	return &prefs, nil
}

// SaveGenres stores the user's genre preferences
func (ps *ProfileStoreService) SaveGenres(ctx context.Context, userID string, prefs models.GenrePreferences) error {
	prefs.UserID = userID
	return ps.Dynamo.PutItem(ctx, models.GenrePreferencesTable, prefs)
}

// LoadNotificationPreferences retrieves the user's notification toggles
func (ps *ProfileStoreService) LoadNotificationPreferences(ctx context.Context, userID string) (*models.NotificationPreferences, error) {
	item, err := ps.Dynamo.GetItem(ctx, models.NotificationPreferencesTable, userKey(userID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var prefs models.NotificationPreferences
	if err := attributevalue.UnmarshalMap(item, &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification preferences: %w", err)
	}
	return &prefs, nil
}

// SaveNotificationPreferences stores the user's notification toggles
func (ps *ProfileStoreService) SaveNotificationPreferences(ctx context.Context, userID string, prefs models.NotificationPreferences) error {
	prefs.UserID = userID
	return ps.Dynamo.PutItem(ctx, models.NotificationPreferencesTable, prefs)
}

// ClearAll deletes every stored record for the user
func (ps *ProfileStoreService) ClearAll(ctx context.Context, userID string) error {
	tables := []string{
		models.BirthDataTable,
		models.GenrePreferencesTable,
		models.NotificationPreferencesTable,
	}
	for _, table := range tables {
		if err := ps.Dynamo.DeleteItem(ctx, table, userKey(userID)); err != nil {
			return fmt.Errorf("failed to clear table '%s' for user %s: %w", table, userID, err)
		}
	}
	return nil
}

func userKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
}
