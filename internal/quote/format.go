package quote

import "github.com/indexbar/indexbar/internal/market"

// Line 渲染 "<value> (<change>) <percent>"，休市时在前面加 marker。
func Line(q market.Quote, closed bool, marker string) string {
	line := q.Value.String() + " (" + q.Change + ") " + q.PercentChange
	if closed {
		return marker + line
	}
	return line
}
