package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/indexbar/indexbar/internal/cache"
	"github.com/indexbar/indexbar/internal/freshness"
	"github.com/indexbar/indexbar/internal/logging"
	"github.com/indexbar/indexbar/internal/market"
)

// Service 串联 "读取缓存元数据 → 决策 → 回源写缓存 / 复用缓存" 的完整流程。
// 每次调用最多一次决策、一次网络请求、一次缓存写入。
type Service struct {
	store  cache.Store
	source market.Source
	clock  freshness.Clock
	policy freshness.Policy
	logger *logrus.Logger
}

// Options 汇总 Service 依赖，Clock/Policy/Logger 可留空使用默认值。
type Options struct {
	Store  cache.Store
	Source market.Source
	Clock  freshness.Clock
	Policy freshness.Policy
	Logger *logrus.Logger
}

// NewService 构建取数服务。
func NewService(opts Options) (*Service, error) {
	if opts.Store == nil {
		return nil, errors.New("cache store required")
	}
	if opts.Source == nil {
		return nil, errors.New("market source required")
	}
	svc := &Service{
		store:  opts.Store,
		source: opts.Source,
		clock:  opts.Clock,
		policy: opts.Policy,
		logger: opts.Logger,
	}
	if svc.clock == nil {
		svc.clock = freshness.SystemClock{}
	}
	if svc.policy == (freshness.Policy{}) {
		svc.policy = freshness.NewPolicy()
	}
	if svc.logger == nil {
		svc.logger = logrus.StandardLogger()
	}
	return svc, nil
}

// Result 描述一次取数的结果。ModTime 为缓存时间（Reuse）或写入时间（Fetch 且写入成功）。
type Result struct {
	Payload  []byte
	Decision freshness.Decision
	Now      time.Time
	ModTime  time.Time
}

// Snapshot 按新鲜度策略返回快照正文。回源失败与复用时读取失败均视为致命错误；
// 缓存写入失败仅记录日志，仍返回刚拉取的数据。
func (s *Service) Snapshot(ctx context.Context) (*Result, error) {
	now := s.clock.Now()
	state := s.cacheState(ctx)
	decision := s.policy.Decide(now, state)

	result := &Result{Decision: decision, Now: now}
	if decision == freshness.Reuse {
		payload, err := s.store.Read(ctx)
		if err != nil {
			return nil, fmt.Errorf("read cached snapshot: %w", err)
		}
		result.Payload = payload
		result.ModTime = state.LastModified
		s.logger.WithFields(s.fields("snapshot_reuse", decision)).
			WithField("mod_time", state.LastModified).
			Debug("复用缓存快照")
		return result, nil
	}

	payload, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	result.Payload = payload

	entry, err := s.store.Write(ctx, payload)
	if err != nil {
		s.logger.WithError(err).
			WithFields(s.fields("cache_write_failed", decision)).
			Warn("cache_write_failed")
		return result, nil
	}
	result.ModTime = entry.ModTime
	s.logger.WithFields(s.fields("snapshot_fetch", decision)).
		WithField("size_bytes", entry.SizeBytes).
		Debug("快照已刷新")
	return result, nil
}

// Current 返回状态栏要打印的一行文本；休市标记由同一个 now 决定。
func (s *Service) Current(ctx context.Context, symbol, closedMarker string) (string, error) {
	result, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	q, err := market.ParseQuote(result.Payload, symbol)
	if err != nil {
		return "", fmt.Errorf("parse snapshot: %w", err)
	}
	return Line(q, s.policy.MarketClosed(result.Now), closedMarker), nil
}

// cacheState 把任何 Stat 异常都降级为 "无缓存"，从而强制回源。
func (s *Service) cacheState(ctx context.Context) freshness.CacheState {
	entry, err := s.store.Stat(ctx)
	switch {
	case err == nil:
		return freshness.CacheState{Exists: true, LastModified: entry.ModTime}
	case errors.Is(err, cache.ErrNotFound):
		return freshness.CacheState{}
	default:
		s.logger.WithError(err).
			WithFields(logrus.Fields{"action": "cache_stat_failed", "invocation": logging.InvocationID()}).
			Warn("cache_stat_failed")
		return freshness.CacheState{}
	}
}

func (s *Service) fields(action string, decision freshness.Decision) logrus.Fields {
	return logging.SnapshotFields(action, decision.String(), s.store.Path())
}
