package errors

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a type for context keys
type contextKey string

const (
	operationIDKey contextKey = "operation_id"
)

// GenerateOperationID generates a new unique operation ID
func GenerateOperationID() string {
	return uuid.New().String()
}

// WithOperationID adds an operation ID to the context
func WithOperationID(ctx context.Context, operationID string) context.Context {
	return context.WithValue(ctx, operationIDKey, operationID)
}

// GetOperationID retrieves the operation ID from the context
func GetOperationID(ctx context.Context) string {
	if operationID, ok := ctx.Value(operationIDKey).(string); ok {
		return operationID
	}
	return ""
}

// OperationIDOrGenerate returns the operation ID from context or generates a new one
func OperationIDOrGenerate(ctx context.Context) string {
	if operationID := GetOperationID(ctx); operationID != "" {
		return operationID
	}
	return GenerateOperationID()
}
