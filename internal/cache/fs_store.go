package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// NewStore 以 filePath 为快照文件构建磁盘缓存，父目录延迟到首次写入时创建。
func NewStore(filePath string) (Store, error) {
	if filePath == "" {
		return nil, errors.New("cache path required")
	}

	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("resolve cache path: %w", err)
	}

	return &fileStore{filePath: abs}, nil
}

// fileStore 不做跨进程加锁：rename 保证读者只会看到完整文件，并发写入以最后一次为准。
type fileStore struct {
	filePath string
}

func (s *fileStore) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := s.stat(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *fileStore) Write(ctx context.Context, payload []byte) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	tempFile, err := os.CreateTemp(dir, ".indexes-*")
	if err != nil {
		return nil, err
	}
	tempName := tempFile.Name()

	written, err := tempFile.Write(payload)
	if err == nil && written < len(payload) {
		err = fmt.Errorf("short write: %d of %d bytes", written, len(payload))
	}
	closeErr := tempFile.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tempName)
		return nil, err
	}

	if err := os.Rename(tempName, s.filePath); err != nil {
		os.Remove(tempName)
		return nil, err
	}

	return s.stat()
}

func (s *fileStore) Stat(ctx context.Context) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.stat()
}

func (s *fileStore) Path() string {
	return s.filePath
}

func (s *fileStore) stat() (*Entry, error) {
	info, err := os.Stat(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, ErrNotFound
	}
	return &Entry{
		FilePath:  s.filePath,
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
