package cache_test

import (
	"context"
	"drivent/shared/cache"
	"drivent/shared/cache/mocks"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "hotel:get:3", cache.BuildKey("hotel", "get", "3"))
	assert.Equal(t, "hotel:gets*", cache.BuildKey("hotel", "gets*"))
	assert.Equal(t, "", cache.BuildKey())
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockRedisCache(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockCache.EXPECT().Clear(ctx, "hotel:gets*").Return(errors.New("redis down")),
		mockCache.EXPECT().Clear(ctx, "hotel:get:1*").Return(nil),
	)

	cache.InvalidateCaches(ctx, mockCache, "hotel:gets*", "hotel:get:1*")
}
