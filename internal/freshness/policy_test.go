package freshness

import (
	"testing"
	"time"
)

// 2024-01-01 是周一。
func at(day, hour int) time.Time {
	return time.Date(2024, time.January, day, hour, 0, 0, 0, time.Local)
}

func TestDecideScenarios(t *testing.T) {
	testCases := []struct {
		name  string
		now   time.Time
		state CacheState
		want  Decision
	}{
		{"wednesday trading forces fetch", at(3, 14), CacheState{Exists: true, LastModified: at(3, 10)}, Fetch},
		{"saturday evening reuses friday afternoon", at(6, 20), CacheState{Exists: true, LastModified: at(5, 15)}, Reuse},
		{"saturday evening refetches friday night", at(6, 20), CacheState{Exists: true, LastModified: at(5, 22)}, Fetch},
		{"missing cache on sunday night", at(7, 3), CacheState{}, Fetch},
		{"weekday before open with fresh cache", at(3, 7), CacheState{Exists: true, LastModified: at(2, 18)}, Reuse},
		{"weekday at close hour", at(3, 19), CacheState{Exists: true, LastModified: at(3, 18)}, Reuse},
		{"cache written at close hour", at(3, 20), CacheState{Exists: true, LastModified: at(3, 19)}, Fetch},
		{"cache written at open hour", at(7, 12), CacheState{Exists: true, LastModified: at(5, 8)}, Reuse},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decide(tc.now, tc.state); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDecideAlwaysFetchesDuringTrading(t *testing.T) {
	for day := 1; day <= 5; day++ {
		for hour := 8; hour < 19; hour++ {
			now := at(day, hour)
			for cacheHour := 0; cacheHour < 24; cacheHour++ {
				state := CacheState{Exists: true, LastModified: at(day, cacheHour)}
				if got := Decide(now, state); got != Fetch {
					t.Fatalf("now=%v cache=%v: expected fetch, got %s", now, state.LastModified, got)
				}
			}
		}
	}
}

func TestDecideOutsideTradingFollowsCacheHour(t *testing.T) {
	nows := []time.Time{at(6, 10), at(7, 23), at(3, 5), at(4, 21)}
	for _, now := range nows {
		for cacheHour := 0; cacheHour < 24; cacheHour++ {
			state := CacheState{Exists: true, LastModified: at(1, cacheHour)}
			want := Fetch
			if cacheHour >= 8 && cacheHour < 19 {
				want = Reuse
			}
			if got := Decide(now, state); got != want {
				t.Fatalf("now=%v cacheHour=%d: expected %s, got %s", now, cacheHour, want, got)
			}
		}
	}
}

func TestDecideWithoutCacheAlwaysFetches(t *testing.T) {
	for day := 1; day <= 7; day++ {
		for hour := 0; hour < 24; hour++ {
			if got := Decide(at(day, hour), CacheState{LastModified: at(day, 10)}); got != Fetch {
				t.Fatalf("day=%d hour=%d: expected fetch without cache", day, hour)
			}
		}
	}
}

func TestDecideIgnoresCalendarDate(t *testing.T) {
	now := at(6, 18)
	weekOld := now.AddDate(0, 0, -7).Add(-8 * time.Hour)
	if got := Decide(now, CacheState{Exists: true, LastModified: weekOld}); got != Reuse {
		t.Fatalf("hour-of-day heuristic should reuse a week-old cache, got %s", got)
	}
}

func TestDecideComparesInNowLocation(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	now := time.Date(2024, time.January, 6, 20, 0, 0, 0, paris)
	// 09:30 UTC 即巴黎 10:30。
	modified := time.Date(2024, time.January, 5, 9, 30, 0, 0, time.UTC)
	if got := Decide(now, CacheState{Exists: true, LastModified: modified}); got != Reuse {
		t.Fatalf("expected reuse, got %s", got)
	}
	// 07:30 UTC 即巴黎 08:30。
	modified = time.Date(2024, time.January, 5, 7, 30, 0, 0, time.UTC)
	if got := Decide(now, CacheState{Exists: true, LastModified: modified}); got != Reuse {
		t.Fatalf("expected reuse after zone conversion, got %s", got)
	}
	// 18:30 UTC 即巴黎 19:30。
	modified = time.Date(2024, time.January, 5, 18, 30, 0, 0, time.UTC)
	if got := Decide(now, CacheState{Exists: true, LastModified: modified}); got != Fetch {
		t.Fatalf("expected fetch after zone conversion, got %s", got)
	}
}

func TestPolicyCustomWindow(t *testing.T) {
	p := Policy{Window: TradingWindow{StartHour: 9, EndHour: 17}}
	if got := p.Decide(at(3, 8), CacheState{Exists: true, LastModified: at(2, 8)}); got != Fetch {
		t.Fatalf("08:00 cache is outside custom window, got %s", got)
	}
	if !p.MarketClosed(at(3, 17)) {
		t.Fatalf("17:00 should be closed for custom window")
	}
	if (Policy{}).MarketClosed(at(3, 17)) {
		t.Fatalf("zero policy should fall back to default window")
	}
}

func TestTradingWindowContains(t *testing.T) {
	if DefaultWindow.Contains(at(6, 12)) {
		t.Fatalf("saturday must be closed")
	}
	if DefaultWindow.Contains(at(7, 12)) {
		t.Fatalf("sunday must be closed")
	}
	if !DefaultWindow.Contains(at(1, 8)) {
		t.Fatalf("monday 08:00 must be open")
	}
	if DefaultWindow.Contains(at(5, 19)) {
		t.Fatalf("friday 19:00 must be closed")
	}
	if !DefaultWindow.CoversHour(at(6, 12)) {
		t.Fatalf("CoversHour ignores weekday")
	}
}

func TestFixedClock(t *testing.T) {
	now := at(3, 14)
	if got := FixedClock(now).Now(); !got.Equal(now) {
		t.Fatalf("fixed clock drifted: %v", got)
	}
	if Fetch.String() != "fetch" || Reuse.String() != "reuse" {
		t.Fatalf("unexpected decision names")
	}
}
