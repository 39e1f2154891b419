package shared

import (
	"context"
	"drivent/config"
	"drivent/shared/constant"
	"drivent/shared/dto"
	"fmt"
	"strconv"
	"time"
)

// ConvertStringToID parses a positive identifier taken from a path parameter.
func ConvertStringToID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", value, err)
	}

	if id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be positive", value)
	}

	return id, nil
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// QueryTimeout returns the configured storage deadline, falling back to the default.
func QueryTimeout(cfg *config.Config) time.Duration {
	if cfg == nil || cfg.DB.Postgres.QueryTimeoutSeconds <= 0 {
		return constant.DefaultQueryTimeout
	}

	return time.Duration(cfg.DB.Postgres.QueryTimeoutSeconds) * time.Second
}

// UserIDFromContext returns the authenticated user, 0 when the request is anonymous.
func UserIDFromContext(ctx context.Context) int64 {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	return userID
}
