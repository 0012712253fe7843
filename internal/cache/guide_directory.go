package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jurnee/guidebook/internal/models"
)

const (
	guideListKey           = "guides:all"
	pendingCountKeyPrefix  = "guide:pending_count:"
	bookingEventChanPrefix = "guide:booking_events:"
	defaultGuideListTTL    = 30 * time.Second
	pendingCountTTL        = 24 * time.Hour
)

// Booking event types published on a guide's channel
const (
	BookingEventRequested = "requested"
	BookingEventConfirmed = "confirmed"
	BookingEventRejected  = "rejected"
)

type BookingEvent struct {
	Type      string `json:"type"`
	GuideID   string `json:"guide_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

type GuideDirectoryCache interface {
	SetGuideList(ctx context.Context, guides []*models.Guide) error
	GetGuideList(ctx context.Context) ([]*models.Guide, error)
	InvalidateGuideList(ctx context.Context) error
	IncrementPendingCount(ctx context.Context, guideID string) (int64, error)
	DecrementPendingCount(ctx context.Context, guideID string) (int64, error)
	GetPendingCount(ctx context.Context, guideID string) (int64, error)
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error
	SubscribeBookingEvents(ctx context.Context, guideID string) *redis.PubSub
}

type guideDirectoryCache struct {
	redis   *redis.Client
	listTTL time.Duration
}

func NewGuideDirectoryCache(redisClient *redis.Client, listTTL time.Duration) GuideDirectoryCache {
	if listTTL <= 0 {
		listTTL = defaultGuideListTTL
	}
	return &guideDirectoryCache{redis: redisClient, listTTL: listTTL}
}

func (c *guideDirectoryCache) SetGuideList(ctx context.Context, guides []*models.Guide) error {
	data, err := json.Marshal(guides)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, guideListKey, data, c.listTTL).Err()
}

// GetGuideList returns the cached directory listing, or nil on a miss.
func (c *guideDirectoryCache) GetGuideList(ctx context.Context) ([]*models.Guide, error) {
	data, err := c.redis.Get(ctx, guideListKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var guides []*models.Guide
	if err := json.Unmarshal(data, &guides); err != nil {
		return nil, err
	}
	return guides, nil
}

func (c *guideDirectoryCache) InvalidateGuideList(ctx context.Context) error {
	return c.redis.Del(ctx, guideListKey).Err()
}

func (c *guideDirectoryCache) IncrementPendingCount(ctx context.Context, guideID string) (int64, error) {
	key := pendingCountKeyPrefix + guideID
	pipe := c.redis.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, pendingCountTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (c *guideDirectoryCache) DecrementPendingCount(ctx context.Context, guideID string) (int64, error) {
	key := pendingCountKeyPrefix + guideID
	count, err := c.redis.Decr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// The counter is advisory; clamp drift below zero
	if count < 0 {
		c.redis.Set(ctx, key, 0, pendingCountTTL)
		count = 0
	}
	return count, nil
}

func (c *guideDirectoryCache) GetPendingCount(ctx context.Context, guideID string) (int64, error) {
	count, err := c.redis.Get(ctx, pendingCountKeyPrefix+guideID).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}

func (c *guideDirectoryCache) PublishBookingEvent(ctx context.Context, event *BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return c.redis.Publish(ctx, bookingEventChanPrefix+event.GuideID, data).Err()
}

func (c *guideDirectoryCache) SubscribeBookingEvents(ctx context.Context, guideID string) *redis.PubSub {
	return c.redis.Subscribe(ctx, bookingEventChanPrefix+guideID)
}
