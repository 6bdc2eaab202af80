package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

// MacroBreakdown is what the external description-to-macros service returns.
// Fields it omits stay at zero.
type MacroBreakdown struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// MacroService calls the external inference API that turns a free-text meal
// description into estimated macros. Its internals are opaque to us; we only
// depend on the response shape above.
type MacroService struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *zap.Logger
}

func NewMacroService(log *zap.Logger) *MacroService {
	return &MacroService{
		baseURL: os.Getenv("MACRO_API_URL"),
		apiKey:  os.Getenv("MACRO_API_KEY"),
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

func (s *MacroService) Analyze(description string) (*MacroBreakdown, error) {
	payload, err := json.Marshal(map[string]string{"description": description})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/v1/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call macro API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read macro API response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		s.log.Warn("macro API error", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("macro API error %d: %s", resp.StatusCode, string(body))
	}

	var mb MacroBreakdown
	if err := json.Unmarshal(body, &mb); err != nil {
		return nil, fmt.Errorf("failed to parse macro API JSON: %w", err)
	}
	return &mb, nil
}
