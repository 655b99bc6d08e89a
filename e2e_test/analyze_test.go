package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/pentascale/cmd"
	"github.com/jsphweid/pentascale/model"
	"github.com/stretchr/testify/assert"
)

func createAnalyzeReqBody(measures [][]string, key string) io.Reader {
	ar := model.AnalyzeRequestBody{Measures: measures, InstrumentKey: key}
	data, err := json.Marshal(ar)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func postAnalyze(t *testing.T, body io.Reader) (*http.Response, []byte) {
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	w := httptest.NewRecorder()
	cmd.HandleAnalyze(w, req)

	resp := w.Result()
	respBody, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	return resp, respBody
}

func TestAnalyzeCmOnBbHornE2E(t *testing.T) {
	resp, respBody := postAnalyze(t, createAnalyzeReqBody([][]string{{"Cm"}}, "Bb"))

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.AnalyzeResponse
	assert.NoError(json.Unmarshal(respBody, &res))

	assert.NotEmpty(res.AnalysisId)
	assert.False(res.Empty)
	assert.NotNil(res.Result)
	assert.Equal("Bb", res.Result.InstrumentKey)
	assert.Len(res.Result.Measures, 1)
	assert.Equal([]string{"Re", "Fa", "So", "La", "Do"}, res.Result.Measures[0].Chords[0].Syllables)
	assert.Len(res.Result.Top, 3)
	for _, tc := range res.Result.Top {
		assert.Equal(1, tc.Count)
	}
}

func TestAnalyzeUnknownKeyReturns400(t *testing.T) {
	resp, respBody := postAnalyze(t, createAnalyzeReqBody([][]string{{"C"}}, "G"))

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	var errRes model.ErrorResponse
	assert.NoError(json.Unmarshal(respBody, &errRes))
	assert.Contains(errRes.Error, "unknown instrument key")
}

func TestAnalyzeEmptyProgressionIsBenign(t *testing.T) {
	resp, respBody := postAnalyze(t, createAnalyzeReqBody([][]string{{}, {}}, "C"))

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.AnalyzeResponse
	assert.NoError(json.Unmarshal(respBody, &res))
	assert.True(res.Empty)
	assert.Nil(res.Result)
	assert.NotEmpty(res.AnalysisId)
}

func TestAnalyzeMalformedBodyReturns400(t *testing.T) {
	resp, _ := postAnalyze(t, bytes.NewReader([]byte("{not json")))
	assert.Equal(t, 400, resp.StatusCode)
}
