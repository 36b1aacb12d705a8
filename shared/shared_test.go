package shared_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"reserva/shared"
	"reserva/shared/cache/mocks"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "single part",
			parts:    []string{"reservation"},
			expected: "reservation",
		},
		{
			name:     "multiple parts",
			parts:    []string{"reservation", "gets", "all"},
			expected: "reservation:gets:all",
		},
		{
			name:     "date scoped key",
			parts:    []string{"reservation", "gets", "date", "2026-08-29"},
			expected: "reservation:gets:date:2026-08-29",
		},
		{
			name:     "no parts",
			parts:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestInvalidateCaches(t *testing.T) {
	t.Run("clears everything under the prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		redisCache := mocks.NewMockRedisCache(ctrl)
		redisCache.EXPECT().
			Clear(gomock.Any(), "reservation:gets*").
			Return(nil)

		shared.InvalidateCaches(context.Background(), redisCache, "reservation:gets")
	})

	t.Run("swallows cache errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		redisCache := mocks.NewMockRedisCache(ctrl)
		redisCache.EXPECT().
			Clear(gomock.Any(), "reservation:gets*").
			Return(errors.New("connection refused"))

		shared.InvalidateCaches(context.Background(), redisCache, "reservation:gets")
	})
}
