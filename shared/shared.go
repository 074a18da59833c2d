package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"proccms/shared/cache"
	"proccms/shared/constant"
	"proccms/shared/dto"
	"proccms/shared/timezone"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

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

func ConvertStringToInt(value string) (int, error) {
	res, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("failed to convert string to int: %w", err)
	}

	return res, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero db tagged fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
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

// BuildCacheKey joins the prefix and parts with ":".
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from the query params and filter of a listing.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	raw, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Filter dto.FilterGroup `json:"filter"`
	}{params, filter})
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache query")

		return prefix
	}

	sum := sha256.Sum256(raw)

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches removes every key that starts with prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// CurrentUser reads the authenticated identity that the auth middleware stored on the context.
func CurrentUser(ctx context.Context) dto.Identity {
	var identity dto.Identity

	identity.ID, _ = ctx.Value(constant.ContextKeyUserID).(string)
	identity.Email, _ = ctx.Value(constant.ContextKeyUserEmail).(string)
	identity.Role, _ = ctx.Value(constant.ContextKeyUserRole).(string)
	identity.Username, _ = ctx.Value(constant.ContextKeyUsername).(string)
	identity.Name, _ = ctx.Value(constant.ContextKeyUserName).(string)
	identity.Department, _ = ctx.Value(constant.ContextKeyUserDepartment).(string)

	return identity
}

// WithIdentity stores identity on ctx under the keys read by CurrentUser.
func WithIdentity(ctx context.Context, identity dto.Identity) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, identity.ID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, identity.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, identity.Role)
	ctx = context.WithValue(ctx, constant.ContextKeyUsername, identity.Username)
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, identity.Name)

	return context.WithValue(ctx, constant.ContextKeyUserDepartment, identity.Department)
}
