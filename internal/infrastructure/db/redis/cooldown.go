package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cooldownTTL = time.Minute

// OTPCooldown rate-limits OTP email sends per address, backed by Redis.
// Key format: otp_cooldown:<purpose>:<email>
type OTPCooldown struct {
	client *redis.Client
}

// NewOTPCooldown creates an OTPCooldown wrapping the given Redis client.
func NewOTPCooldown(client *redis.Client) *OTPCooldown {
	return &OTPCooldown{client: client}
}

// Acquire reports whether the caller may send now. The first caller within a
// window wins; followers are refused until the key expires.
func (c *OTPCooldown) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := c.client.SetNX(ctx, "otp_cooldown:"+key, "1", cooldownTTL).Result()
	if err != nil {
		return false, fmt.Errorf("otp cooldown: %w", err)
	}
	return ok, nil
}
