package domain

// TranslateRequest 入站翻译请求
type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// ApplyDefaults 未指定语言时按上游网页端的默认值补齐
func (t *TranslateRequest) ApplyDefaults() {
	if t.SourceLang == "" {
		t.SourceLang = "AUTO"
	}
	if t.TargetLang == "" {
		t.TargetLang = "ZH"
	}
}

// TranslateResponse 拍平后的翻译结果
//
//	{
//	 "code": 200,
//	 "id": 8345261001,
//	 "data": "我爱你",
//	 "alternatives": ["我爱你们", "我爱您"],
//	 "source_lang": "EN",
//	 "target_lang": "ZH",
//	 "method": "Free"
//	}
type TranslateResponse struct {
	Code         int      `json:"code"`
	ID           int64    `json:"id"`
	Data         string   `json:"data"`
	Alternatives []string `json:"alternatives"`
	SourceLang   string   `json:"source_lang"`
	TargetLang   string   `json:"target_lang"`
	Method       string   `json:"method"`
}
