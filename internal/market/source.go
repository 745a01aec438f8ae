package market

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"
)

// PrefixLength 是上游正文前用于防 JSON 劫持的固定前缀长度。
const PrefixLength = 5

var (
	// ErrUpstreamStatus 表示上游返回了非 2xx 状态码。
	ErrUpstreamStatus = errors.New("unexpected upstream status")
	// ErrShortPayload 表示正文短于固定前缀。
	ErrShortPayload = errors.New("payload shorter than prefix")
	// ErrInvalidPayload 表示正文不是合法 JSON 或结构不符合预期。
	ErrInvalidPayload = errors.New("invalid payload")
)

// trackedInstruments 是请求中固定的标的集合（CAC 40 及同组指数）。
var trackedInstruments = url.Values{
	"ei":    {"si0PZIezLcmakdUPzLWewAg"},
	"yv":    {"3"},
	"cs":    {"0"},
	"async": {"mids:/m/016j14|/m/02q4tvl|/g/11f3jy5sx4|/g/1q52g5hz_,currencies:"},
}

// Source 产出一次完整的行情快照正文。
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// HTTPSource 通过一次 GET 请求获取快照，不做重试。
type HTTPSource struct {
	client   *http.Client
	endpoint string
}

// NewHTTPSource 构建指向 endpoint 的数据源，client 为空时使用 http.DefaultClient。
func NewHTTPSource(client *http.Client, endpoint string) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{client: client, endpoint: endpoint}
}

// RequestURL 返回带固定查询参数的完整请求地址。
func (s *HTTPSource) RequestURL() (string, error) {
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	query := u.Query()
	for key, values := range trackedInstruments {
		query[key] = values
	}
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// Fetch 返回去掉前缀后的 JSON 正文；非法 JSON 视为失败，避免写入缓存。
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	target, err := s.RequestURL()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return StripPrefix(raw)
}

// StripPrefix 去掉固定长度前缀并校验剩余部分为合法 JSON。
func StripPrefix(raw []byte) ([]byte, error) {
	if len(raw) < PrefixLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortPayload, len(raw))
	}
	payload := raw[PrefixLength:]
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("%w: not valid json", ErrInvalidPayload)
	}
	return payload, nil
}
