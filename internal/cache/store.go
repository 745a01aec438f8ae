package cache

import (
	"context"
	"errors"
	"path/filepath"
	"time"
)

// Store 负责管理快照文件的读写。磁盘布局遵循：
//
//	{HOME}/.config/polybar/.indexes.txt    # 最近一次成功拉取的原始正文
//
// 文件的 ModTime/Size 由文件系统提供，不在正文中内联。
type Store interface {
	// Read 返回完整快照正文。若不存在则返回 ErrNotFound。
	Read(ctx context.Context) ([]byte, error)

	// Write 以临时文件 + rename 的方式整体替换快照，并在需要时创建父目录。
	Write(ctx context.Context, payload []byte) (*Entry, error)

	// Stat 返回快照的文件信息。若不存在则返回 ErrNotFound。
	Stat(ctx context.Context) (*Entry, error)

	// Path 返回快照位置，仅用于日志与诊断。
	Path() string
}

// Entry 描述磁盘上的快照文件。
type Entry struct {
	FilePath  string    `json:"file_path"`
	SizeBytes int64     `json:"size_bytes"`
	ModTime   time.Time `json:"mod_time"`
}

// ErrNotFound 表示快照不存在。
var ErrNotFound = errors.New("cache entry not found")

// DefaultPath 返回 polybar 约定的快照位置。
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", "polybar", ".indexes.txt")
}
