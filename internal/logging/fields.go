package logging

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// invocationID 在一次进程调用内保持不变，用于串联同一次刷新的所有日志。
var invocationID = uuid.NewString()

// InvocationID 返回当前进程的调用标识。
func InvocationID() string {
	return invocationID
}

// BaseFields 构建 action + 配置路径等基础字段，便于不同入口复用。
func BaseFields(action, configPath string) logrus.Fields {
	return logrus.Fields{
		"action":     action,
		"configPath": configPath,
		"invocation": invocationID,
	}
}

// SnapshotFields 提供取数决策相关字段，供快照日志复用。
func SnapshotFields(action, decision, cachePath string) logrus.Fields {
	return logrus.Fields{
		"action":     action,
		"decision":   decision,
		"cache_path": cachePath,
		"invocation": invocationID,
	}
}
