package freshness

import "time"

// Decision 是一次调用的取数结论。
type Decision int

const (
	// Fetch 表示需要回源拉取最新快照。
	Fetch Decision = iota
	// Reuse 表示直接返回磁盘上的快照。
	Reuse
)

func (d Decision) String() string {
	switch d {
	case Fetch:
		return "fetch"
	case Reuse:
		return "reuse"
	default:
		return "unknown"
	}
}

// CacheState 是决策所需的缓存元数据；Exists=false 时忽略 LastModified。
type CacheState struct {
	Exists       bool
	LastModified time.Time
}

// Policy 绑定交易时段，零值 Policy 使用 DefaultWindow。
type Policy struct {
	Window TradingWindow
}

// NewPolicy 返回使用默认交易时段的策略。
func NewPolicy() Policy {
	return Policy{Window: DefaultWindow}
}

func (p Policy) window() TradingWindow {
	if p.Window == (TradingWindow{}) {
		return DefaultWindow
	}
	return p.Window
}

// Decide 在交易时段内总是回源；非交易时段仅当缓存写入于交易小时内才复用。
// 缓存时间会先转换到 now 的时区再取小时。
func (p Policy) Decide(now time.Time, state CacheState) Decision {
	if !state.Exists {
		return Fetch
	}
	w := p.window()
	if w.Contains(now) {
		return Fetch
	}
	if !w.CoversHour(state.LastModified.In(now.Location())) {
		return Fetch
	}
	return Reuse
}

// MarketClosed 用于输出层决定是否添加休市标记。
func (p Policy) MarketClosed(now time.Time) bool {
	return !p.window().Contains(now)
}

// Decide 使用默认交易时段做出决策。
func Decide(now time.Time, state CacheState) Decision {
	return NewPolicy().Decide(now, state)
}
