package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bastiangx/katik/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, cfg *config.Config, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHTTPServer(newTestCompleter(t), cfg)
	rec := httptest.NewRecorder()
	h.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHTTPComplete(t *testing.T) {
	rec := serve(t, nil, "/complete/"+url.PathEscape("Qo'noSD"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CompletionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Qo'noSD", resp.Input)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Suggestions, 2)
	assert.Equal(t, "-Daq", resp.Suggestions[0].Word)
	assert.Equal(t, "noun suffix type 5", resp.Suggestions[0].POS)
	require.Len(t, resp.Parsed, 1)
	assert.Equal(t, []string{"Qo'noS"}, resp.Parsed[0].Morphemes)
}

func TestHTTPCompleteLimit(t *testing.T) {
	testCases := []struct {
		name     string
		target   string
		status   int
		expected int
	}{
		{"default limit", "/complete/tlh", http.StatusOK, 2},
		{"explicit limit", "/complete/tlh?limit=1", http.StatusOK, 1},
		{"bad limit", "/complete/tlh?limit=many", http.StatusBadRequest, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, nil, tc.target)
			require.Equal(t, tc.status, rec.Code)
			if tc.status != http.StatusOK {
				return
			}
			var resp CompletionResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Len(t, resp.Suggestions, tc.expected)
		})
	}
}

func TestHTTPCompleteValidation(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxPrefix = 4

	rec := serve(t, cfg, "/complete/tlhIngan")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp CompletionError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, http.StatusBadRequest, errResp.Code)
	assert.NotEmpty(t, errResp.Error)
}

func TestHTTPFilteredInput(t *testing.T) {
	rec := serve(t, nil, "/complete/123")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"input":"123","suggestions":[],"parsed":[],"count":0,"time_us":0}`, rec.Body.String())
}

func TestHTTPHealthAndStats(t *testing.T) {
	rec := serve(t, nil, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","words":6}`, rec.Body.String())

	rec = serve(t, nil, "/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 6, stats["totalWords"])
}

func TestHTTPTranslate(t *testing.T) {
	testCases := []struct {
		name     string
		target   string
		status   int
		expected []string
	}{
		{"english", "/translate/en/Kronos", http.StatusOK, []string{"Qo'noS"}},
		{"english gloss part", "/translate/en/in,%20at", http.StatusOK, []string{"-Daq"}},
		{"no swedish glosses", "/translate/sv/Kronos", http.StatusOK, []string{}},
		{"unknown language", "/translate/de/Kronos", http.StatusNotFound, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, nil, tc.target)
			require.Equal(t, tc.status, rec.Code)
			if tc.expected == nil {
				return
			}
			var body struct {
				Words []struct {
					Headword string `json:"tlh"`
				} `json:"words"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			got := []string{}
			for _, w := range body.Words {
				got = append(got, w.Headword)
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestHTTPWord(t *testing.T) {
	rec := serve(t, nil, "/word/4")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tlh":"tlhIngan"`)
	assert.Contains(t, rec.Body.String(), `"pos":"noun"`)

	rec = serve(t, nil, "/word/404")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPIndex(t *testing.T) {
	rec := serve(t, nil, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "/complete/")
}

func TestHTTPUnknownRoute(t *testing.T) {
	rec := serve(t, nil, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
