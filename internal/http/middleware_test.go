package http_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	api "github.com/tazhibayda/contact-service/internal/http"
	"github.com/tazhibayda/contact-service/internal/repo"
)

func Test_MemoryLimiter(t *testing.T) {
	rl := api.NewMemoryLimiter(2, time.Minute)
	ctx := context.Background()

	if !rl.Allow(ctx, "1.2.3.4") || !rl.Allow(ctx, "1.2.3.4") {
		t.Fatal("first two requests must pass")
	}
	if rl.Allow(ctx, "1.2.3.4") {
		t.Fatal("third request within the window must be limited")
	}
	// other clients are unaffected
	if !rl.Allow(ctx, "5.6.7.8") {
		t.Fatal("separate ip must have its own window")
	}
}

func Test_RedisLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	rds := repo.NewRedis(mr.Addr())
	defer rds.Close()

	rl := &api.RedisLimiter{R: rds, Rate: 2, Window: time.Minute}
	ctx := context.Background()

	if !rl.Allow(ctx, "1.2.3.4") || !rl.Allow(ctx, "1.2.3.4") {
		t.Fatal("first two requests must pass")
	}
	if rl.Allow(ctx, "1.2.3.4") {
		t.Fatal("third request within the window must be limited")
	}

	mr.FastForward(2 * time.Minute)
	if !rl.Allow(ctx, "1.2.3.4") {
		t.Fatal("window expiry must reset the counter")
	}
}

func Test_RedisLimiter_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	rds := repo.NewRedis(mr.Addr())
	defer rds.Close()
	mr.Close()

	rl := &api.RedisLimiter{R: rds, Rate: 1, Window: time.Minute}
	if !rl.Allow(context.Background(), "1.2.3.4") {
		t.Fatal("redis outage must not reject submissions")
	}
}
