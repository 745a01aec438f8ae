package freshness

import "time"

// TradingWindow 描述交易时段：工作日内 [StartHour, EndHour) 的本地小时区间。
type TradingWindow struct {
	StartHour int
	EndHour   int
}

// DefaultWindow 为固定规则：周一至周五 8 点到 19 点（不含 19 点）。
var DefaultWindow = TradingWindow{StartHour: 8, EndHour: 19}

// Contains 判断 t 是否处于交易时段（工作日 + 小时区间）。
func (w TradingWindow) Contains(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return w.CoversHour(t)
}

// CoversHour 只比较小时，不关心星期与日期。
func (w TradingWindow) CoversHour(t time.Time) bool {
	hour := t.Hour()
	return hour >= w.StartHour && hour < w.EndHour
}
