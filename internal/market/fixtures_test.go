package market

// samplePayload 模拟上游去掉前缀后的正文，结构与真实响应一致但字段做了裁剪。
const samplePayload = `{"PriceUpdate":{"entities":[
{"financial_entity":{"common_entity_data":{"name":"Dow Jones Industrial Average","last_value_dbl":37592.98,"value_change":"+123.45","percent_change":"0.33%"}}},
{"financial_entity":{"common_entity_data":{"name":"CAC 40","last_value_dbl":7345.12,"value_change":"-18.60","percent_change":"-0.25%"}}},
{"financial_entity":{"common_entity_data":{"name":"Euro Stoxx 50","last_value_dbl":4521.5,"value_change":"+1.10","percent_change":"0.02%"}}}
]}}`

// rawResponse 在正文前拼接 5 字节前缀，与上游原始响应一致。
func rawResponse(payload string) string {
	return ")]}'\n" + payload
}
