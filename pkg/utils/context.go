package utils

import (
	"context"

	"taller-system/pkg/contextkeys"
	apperrors "taller-system/pkg/errors"
)

// Session is the per-request identity resolved once by the auth middleware.
// Services take it from the context instead of re-querying "who am I".
type Session struct {
	UserID   uint64
	Role     string
	BranchID uint64
}

func GetSessionFromCtx(ctx context.Context) (Session, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return Session{}, apperrors.ErrUserIDNotFoundInContext
	}
	role, _ := ctx.Value(contextkeys.UserRoleKey).(string)
	branchID, _ := ctx.Value(contextkeys.BranchIDKey).(uint64)
	return Session{UserID: userID, Role: role, BranchID: branchID}, nil
}

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}
