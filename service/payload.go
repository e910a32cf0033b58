package service

import (
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	"deeplx-relay/domain"
)

// upstreamPayload DeepL 网页端发出的 JSON-RPC 请求体
type upstreamPayload struct {
	JSONRPC string         `json:"jsonrpc"`
	Method  string         `json:"method"`
	ID      int64          `json:"id"`
	Params  upstreamParams `json:"params"`
}

type upstreamParams struct {
	Texts           []upstreamText  `json:"texts"`
	Splitting       string          `json:"splitting"`
	Lang            upstreamLang    `json:"lang"`
	Timestamp       int64           `json:"timestamp"`
	CommonJobParams commonJobParams `json:"commonJobParams"`
}

type upstreamText struct {
	Text                string `json:"text"`
	RequestAlternatives int    `json:"requestAlternatives"`
}

type upstreamLang struct {
	SourceLangUserSelected string `json:"source_lang_user_selected"`
	TargetLang             string `json:"target_lang"`
}

type commonJobParams struct {
	WasSpoken    bool   `json:"wasSpoken"`
	TranscribeAs string `json:"transcribe_as"`
}

// buildUpstreamBody 合成上游请求体,返回序列化后的字符串和本次请求 id。
// 结果字符串已按 id 做过空格改写,后续必须原样发出,不能再反序列化。
func buildUpstreamBody(trReq domain.TranslateRequest) (string, int64, error) {
	id := getRandomNumber() + 1
	payload := upstreamPayload{
		JSONRPC: "2.0",
		Method:  "LMT_handle_texts",
		ID:      id,
		Params: upstreamParams{
			Texts: []upstreamText{{
				Text:                trReq.Text,
				RequestAlternatives: 0,
			}},
			Splitting: "newlines",
			Lang: upstreamLang{
				SourceLangUserSelected: strings.ToUpper(trReq.SourceLang),
				TargetLang:             strings.ToUpper(trReq.TargetLang),
			},
			Timestamp:       getTimestamp(getICount(trReq.Text)),
			CommonJobParams: commonJobParams{WasSpoken: false, TranscribeAs: ""},
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", 0, err
	}
	return formatBody(string(raw), id), id, nil
}

// formatBody 复刻网页端序列化器的空格不一致:按 id 在两种字节级
// 写法中二选一。这是对序列化结果的文本替换,不是结构变更,别动。
func formatBody(body string, id int64) string {
	if (id+5)%29 == 0 || (id+3)%13 == 0 {
		return strings.ReplaceAll(body, `"method":"`, `"method" : "`)
	}
	return strings.ReplaceAll(body, `"method":"`, `"method": "`)
}

// getICount 统计原文里小写字母 i 的个数
func getICount(translateText string) int {
	return strings.Count(translateText, "i")
}

// getRandomNumber 生成上游可接受量级的随机数基数
func getRandomNumber() int64 {
	num := rand.Int63n(99999) + 8300000
	return num * 1000
}

// getTimestamp 按 i 的个数对当前毫秒时间戳做偏移,
// i_count 为 0 时原样返回。上游以此校验请求来源,不要化简。
func getTimestamp(iCount int) int64 {
	ts := time.Now().UnixMilli()
	if iCount == 0 {
		return ts
	}
	n := int64(iCount)
	return ts - ts%n + n
}
