package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// Validate 针对语义级别做进一步校验，防止非法配置进入取数流程。
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("配置为空")
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return newFieldError("LogLevel", "无法识别的日志级别")
	}
	if c.LogMaxSize < 0 {
		return newFieldError("LogMaxSize", "不能为负数")
	}
	if c.LogMaxBackups < 0 {
		return newFieldError("LogMaxBackups", "不能为负数")
	}
	if strings.TrimSpace(c.CachePath) == "" {
		return newFieldError("CachePath", "不能为空")
	}
	if err := validateEndpoint(c.Endpoint); err != nil {
		return fmt.Errorf("Endpoint: %w", err)
	}
	if strings.TrimSpace(c.Symbol) == "" {
		return newFieldError("Symbol", "不能为空")
	}
	if c.UpstreamTimeout.DurationValue() <= 0 {
		return newFieldError("UpstreamTimeout", "必须大于 0")
	}
	return nil
}

func validateEndpoint(raw string) error {
	if raw == "" {
		return errors.New("缺少数据源地址")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("仅支持 http/https，数据源: %s", raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("数据源缺少 Host: %s", raw)
	}
	return nil
}
