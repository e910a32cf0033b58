package service

import (
	"github.com/samber/lo"
)

// extractTranslation 从上游响应里取出译文和备选。
// 上游结构不受我们控制,任何一层拿不到都按缺省值处理,绝不报错:
// 走不到 result.texts[0] 时译文为空串、备选为空列表。
func extractTranslation(body map[string]any) (string, []string) {
	data := ""
	alternatives := make([]string, 0)

	result, ok := body["result"].(map[string]any)
	if !ok {
		return data, alternatives
	}
	texts, ok := result["texts"].([]any)
	if !ok || len(texts) == 0 {
		return data, alternatives
	}
	// 备选只看第一个元素自己的 alternatives,不跨元素聚合
	first, ok := texts[0].(map[string]any)
	if !ok {
		return data, alternatives
	}
	if text, ok := first["text"].(string); ok {
		data = text
	}
	if alts, ok := first["alternatives"].([]any); ok {
		alternatives = append(alternatives, lo.FilterMap(alts, func(item any, _ int) (string, bool) {
			m, ok := item.(map[string]any)
			if !ok {
				return "", false
			}
			text, ok := m["text"].(string)
			return text, ok
		})...)
	}
	return data, alternatives
}
