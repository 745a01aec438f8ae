package freshness

import "time"

// Clock 隔离所有墙上时钟读取。
type Clock interface {
	Now() time.Time
}

// SystemClock 返回本地时区的当前时间。
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock 总是返回同一时刻，测试中用来固定 "now"。
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
