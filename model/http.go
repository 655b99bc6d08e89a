package model

type AnalyzeRequestBody struct {
	Measures      [][]string `json:"measures"`
	InstrumentKey string     `json:"key"`
}

type AnalyzeResponse struct {
	AnalysisId string          `json:"analysis_id"`
	Empty      bool            `json:"empty"`
	Result     *AnalysisResult `json:"result,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
