package models

// ShareRecord stores text handed to the platform share sheet, keyed by token
type ShareRecord struct {
	Token     string `json:"token" dynamodbav:"token"`
	UserID    string `json:"-" dynamodbav:"userId"`
	Text      string `json:"text" dynamodbav:"text"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"`
}

// SharesTable is the DynamoDB table name for share records
const SharesTable = "Shares"
