// Package cartstore keeps shopping-cart state in Redis. Each cart is one hash
// keyed by cart ID, field per product ID, value the aggregated quantity.
package cartstore

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"careon/api-gateway/models"
)

// DefaultTTL is how long an untouched cart survives. Every write refreshes it.
const DefaultTTL = 7 * 24 * time.Hour

// Store is a Redis-backed cart store.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects a cart store to the Redis instance at addr.
func New(addr, password string) *Store {
	return &Store{
		rdb: redis.NewClient(&redis.Options{Addr: addr, Password: password}),
		ttl: DefaultTTL,
	}
}

func cartKey(cartID string) string {
	return "cart:" + cartID
}

// AddItem adds qty of productID to the cart, aggregating with any existing
// quantity, and returns the new quantity for that product. A negative qty
// decrements; when the aggregate drops to zero or below the line is removed.
func (s *Store) AddItem(ctx context.Context, cartID, productID string, qty int64) (int64, error) {
	key := cartKey(cartID)

	total, err := s.rdb.HIncrBy(ctx, key, productID, qty).Result()
	if err != nil {
		return 0, fmt.Errorf("add cart item: %w", err)
	}
	if total <= 0 {
		if err := s.rdb.HDel(ctx, key, productID).Err(); err != nil {
			return 0, fmt.Errorf("drop empty cart line: %w", err)
		}
		total = 0
	}
	if err := s.rdb.Expire(ctx, key, s.ttl).Err(); err != nil {
		return 0, fmt.Errorf("refresh cart ttl: %w", err)
	}
	return total, nil
}

// RemoveItem deletes one product line from the cart.
func (s *Store) RemoveItem(ctx context.Context, cartID, productID string) error {
	if err := s.rdb.HDel(ctx, cartKey(cartID), productID).Err(); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

// Items returns the cart lines sorted by product ID. An unknown cart is simply
// empty, not an error.
func (s *Store) Items(ctx context.Context, cartID string) ([]models.CartItem, error) {
	fields, err := s.rdb.HGetAll(ctx, cartKey(cartID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}

	items := make([]models.CartItem, 0, len(fields))
	for productID, raw := range fields {
		qty, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt quantity for %s: %w", productID, err)
		}
		items = append(items, models.CartItem{ProductID: productID, Quantity: qty})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	return items, nil
}

// Clear removes the whole cart.
func (s *Store) Clear(ctx context.Context, cartID string) error {
	if err := s.rdb.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Ping checks the Redis connection at startup.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
