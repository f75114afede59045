package shared

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"suitespot/shared/cache"
	"suitespot/shared/constant"
	"suitespot/shared/dto"
	"suitespot/shared/timezone"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// CalculateTotalPage never returns less than one page.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// TransformFields turns the non-zero db-tagged fields of a patch struct into an
// update map, stamped with the modifying user.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
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

// BuildCacheKey joins parts under the application cache prefix.
func BuildCacheKey(parts ...string) string {
	return strings.Join(append([]string{constant.CacheKeyPrefix}, parts...), constant.CacheKeySeparator)
}

// BuildCacheKeyWithQuery builds a list cache key that varies with paging and sorting.
func BuildCacheKeyWithQuery(entity string, params dto.QueryParams, extra ...string) string {
	parts := []string{
		entity,
		"list",
		fmt.Sprintf("p%d", params.Page),
		fmt.Sprintf("l%d", params.Limit),
		params.SortBy,
		params.SortDir,
	}

	return BuildCacheKey(append(parts, extra...)...)
}

// InvalidateCaches drops every key given. Keys ending in "*" are cleared as patterns.
// Failures are logged and never returned, the database stays the source of truth.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, keys ...string) {
	for _, key := range keys {
		var err error

		if strings.HasSuffix(key, constant.Asterix) {
			err = redisCache.Clear(ctx, key)
		} else {
			err = redisCache.Delete(ctx, key)
		}

		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to invalidate cache")
		}
	}
}

// Operator returns the actor stored in ctx, or the system user.
func Operator(ctx context.Context) string {
	if operator, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && operator != "" {
		return operator
	}

	return constant.SystemUser
}

// WithOperator returns a copy of ctx carrying operator.
func WithOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, constant.ContextKeyUserID, operator)
}
