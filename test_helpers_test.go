package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/indexbar/indexbar/internal/config"
	"github.com/indexbar/indexbar/internal/freshness"
	"github.com/indexbar/indexbar/internal/market"
)

const cacPayload = `{"PriceUpdate":{"entities":[{"financial_entity":{"common_entity_data":{"name":"CAC 40","last_value_dbl":7345.12,"value_change":"-18.60","percent_change":"-0.25%"}}}]}}`

// useBufferWriters 在测试期间把 stdOut/stdErr 换成内存 buffer。
func useBufferWriters(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	prevOut, prevErr := stdOut, stdErr
	stdOut, stdErr = outBuf, errBuf

	t.Cleanup(func() {
		stdOut, stdErr = prevOut, prevErr
	})
	return outBuf, errBuf
}

type countingSource struct {
	payload []byte
	err     error
	calls   int
}

func (s *countingSource) Fetch(ctx context.Context) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.payload, nil
}

// useFakeUpstream 固定时钟并替换数据源，返回源以便断言调用次数。
func useFakeUpstream(t *testing.T, now time.Time, source *countingSource) {
	t.Helper()

	prevClock, prevSource := clock, newSource
	clock = freshness.FixedClock(now)
	newSource = func(*config.Config) market.Source { return source }

	t.Cleanup(func() {
		clock, newSource = prevClock, prevSource
	})
}

// useTempHome 把 HOME 指向临时目录，返回默认快照路径。
func useTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return filepath.Join(home, ".config", "polybar", ".indexes.txt")
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "indexbar.toml")
	if err := os.WriteFile(file, []byte(strings.TrimSpace(content)), 0o600); err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}
	return file
}
