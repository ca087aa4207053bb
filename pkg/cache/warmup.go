package cache

import (
	"context"
	"fmt"
	"time"

	"serial_novel/pkg/logger"

	"go.uber.org/zap"
)

// WarmupFunc 预热加载函数，负责把数据写入缓存
type WarmupFunc func(ctx context.Context) error

// WarmupConfig 预热配置
type WarmupConfig struct {
	Attempts   int
	RetryDelay time.Duration
	Timeout    time.Duration
}

// DefaultWarmupConfig 默认预热配置
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Attempts:   3,
		RetryDelay: 2 * time.Second,
		Timeout:    30 * time.Second,
	}
}

// Warmup 执行预热，失败按 RetryDelay 重试
// 预热失败不影响服务，读取时会自行回源
func Warmup(ctx context.Context, name string, load WarmupFunc, cfg WarmupConfig) error {
	if cfg.Attempts <= 0 {
		cfg.Attempts = 1
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	var err error
	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		if err = load(ctx); err == nil {
			logger.L().Info("cache warmed",
				zap.String("name", name),
				zap.Int("attempt", attempt),
				zap.Duration("elapsed", time.Since(start)))
			return nil
		}
		logger.L().Warn("cache warmup attempt failed",
			zap.String("name", name),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt == cfg.Attempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("warmup %s: %w", name, ctx.Err())
		case <-time.After(cfg.RetryDelay):
		}
	}
	return fmt.Errorf("warmup %s failed after %d attempts: %w", name, cfg.Attempts, err)
}
