// Package cache keeps resolved slot listings in Redis for a short TTL.
// The cache is optional: a nil *Availability is a no-op and every miss
// falls through to the database.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	booking "github.com/ChiniHendi2004/appointment-api/internal/domain/booking"
)

const defaultTTL = 30 * time.Second

type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(rdb *redis.Client) *Availability {
	if rdb == nil {
		return nil
	}
	return &Availability{rdb: rdb, ttl: defaultTTL}
}

func key(providerID uint, date string) string {
	return fmt.Sprintf("slots:%d:%s", providerID, date)
}

func (c *Availability) Get(ctx context.Context, providerID uint, date string) ([]booking.Slot, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(providerID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []booking.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *Availability) Set(ctx context.Context, providerID uint, date string, slots []booking.Slot) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(providerID, date), raw, c.ttl).Err(); err != nil {
		log.Println("availability cache set:", err)
	}
}

// Invalidate drops the cached day after any ledger write for it.
func (c *Availability) Invalidate(ctx context.Context, providerID uint, date string) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, key(providerID, date)).Err(); err != nil {
		log.Println("availability cache del:", err)
	}
}
