package services

import (
	"context"
	"fmt"
	"time"

	"astra_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ShareService stores share-sheet text under a token so a reading or
// sonification can be handed to the platform share dialog as a link
type ShareService struct {
	Dynamo *DynamoService
}

// CreateShare stores the text and returns the record with its new token
func (ss *ShareService) CreateShare(ctx context.Context, userID, text string) (*models.ShareRecord, error) {
	record := models.ShareRecord{
		Token:     uuid.NewString(),
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := ss.Dynamo.PutItem(ctx, models.SharesTable, record); err != nil {
		return nil, fmt.Errorf("failed to store share record: %w", err)
	}
	return &record, nil
}

// GetShare retrieves a share record by token, or (nil, nil) when the token is
// unknown
func (ss *ShareService) GetShare(ctx context.Context, token string) (*models.ShareRecord, error) {
	key := map[string]types.AttributeValue{
		"token": &types.AttributeValueMemberS{Value: token},
	}

	item, err := ss.Dynamo.GetItem(ctx, models.SharesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var record models.ShareRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal share record: %w", err)
	}
	return &record, nil
}
