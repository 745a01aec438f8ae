package market

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// ErrEntityNotFound 表示正文中没有目标指数。
var ErrEntityNotFound = errors.New("index not found in payload")

// Quote 是目标指数的最新报价。Change/PercentChange 保留上游的展示格式（如 "+12.34"、"0.17%"）。
type Quote struct {
	Name          string
	Value         decimal.Decimal
	Change        string
	PercentChange string
}

// ParseQuote 在 PriceUpdate.entities 中按名称查找指数并提取报价。
func ParseQuote(payload []byte, name string) (Quote, error) {
	if !gjson.ValidBytes(payload) {
		return Quote{}, fmt.Errorf("%w: not valid json", ErrInvalidPayload)
	}

	entities := gjson.GetBytes(payload, "PriceUpdate.entities")
	if !entities.IsArray() {
		return Quote{}, fmt.Errorf("%w: PriceUpdate.entities is not an array", ErrInvalidPayload)
	}

	var (
		found  gjson.Result
		exists bool
	)
	entities.ForEach(func(_, entity gjson.Result) bool {
		data := entity.Get("financial_entity.common_entity_data")
		if data.Get("name").String() == name {
			found = data
			exists = true
			return false
		}
		return true
	})
	if !exists {
		return Quote{}, fmt.Errorf("%w: %s", ErrEntityNotFound, name)
	}

	last := found.Get("last_value_dbl")
	if last.Type != gjson.Number {
		return Quote{}, fmt.Errorf("%w: last_value_dbl is not a number", ErrInvalidPayload)
	}
	value, err := decimal.NewFromString(last.Raw)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: last_value_dbl: %v", ErrInvalidPayload, err)
	}

	change := found.Get("value_change")
	if change.Type != gjson.String {
		return Quote{}, fmt.Errorf("%w: value_change is not a string", ErrInvalidPayload)
	}
	percent := found.Get("percent_change")
	if percent.Type != gjson.String {
		return Quote{}, fmt.Errorf("%w: percent_change is not a string", ErrInvalidPayload)
	}

	return Quote{
		Name:          name,
		Value:         value,
		Change:        change.String(),
		PercentChange: percent.String(),
	}, nil
}
