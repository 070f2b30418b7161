package records

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bizschool/models"
	"bizschool/utils"

	"go.uber.org/zap"
)

const programsLayout = "LearningProgramApi"

// FileMakerClient reads learning-program records from the FileMaker Data
// API. It owns its TokenProvider rather than sharing module-level state.
type FileMakerClient struct {
	baseURL  string
	database string
	tokens   TokenProvider
	client   *http.Client
}

func NewFileMakerClient(baseURL, database string, tokens TokenProvider) *FileMakerClient {
	return &FileMakerClient{
		baseURL:  baseURL,
		database: database,
		tokens:   tokens,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// fmRecord is the raw Data API record envelope.
type fmRecord struct {
	RecordID  string               `json:"recordId"`
	FieldData models.ProgramRecord `json:"fieldData"`
}

type fmResponse struct {
	Response struct {
		Data []fmRecord `json:"data"`
	} `json:"response"`
	Messages []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"messages"`
}

// ListPrograms fetches every learning-program record.
func (c *FileMakerClient) ListPrograms(ctx context.Context) ([]models.ProgramRecord, error) {
	url := fmt.Sprintf("%s/fmi/data/v1/databases/%s/layouts/%s/records", c.baseURL, c.database, programsLayout)
	return c.fetchRecords(ctx, http.MethodGet, url, nil)
}

// FindProgramByCode looks up a single program by its code (slug).
func (c *FileMakerClient) FindProgramByCode(ctx context.Context, code string) (*models.ProgramRecord, error) {
	url := fmt.Sprintf("%s/fmi/data/v1/databases/%s/layouts/%s/_find", c.baseURL, c.database, programsLayout)
	body := map[string]any{
		"query": []map[string]string{
			{"LearningProgramCode": "=" + strings.ToUpper(code)},
		},
		"sort": []map[string]string{
			{"fieldName": "LearningProgramNameE", "sortOrder": "ascend"},
		},
	}
	recs, err := c.fetchRecords(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

// fetchRecords performs one Data API call, retrying once with a fresh token
// if the cached one has been expired server-side.
func (c *FileMakerClient) fetchRecords(ctx context.Context, method, url string, body map[string]any) ([]models.ProgramRecord, error) {
	logger := utils.GetLogger()

	resp, err := c.do(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		logger.Debug("FileMaker token rejected, refreshing", zap.String("url", url))
		c.tokens.Invalidate()
		resp, err = c.do(ctx, method, url, body)
		if err != nil {
			return nil, err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("FileMaker returned %d: %s", resp.StatusCode, string(raw))
	}

	var payload fmResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode FileMaker response: %w", err)
	}

	records := make([]models.ProgramRecord, 0, len(payload.Response.Data))
	for _, rec := range payload.Response.Data {
		fields := rec.FieldData
		fields.RecordID = rec.RecordID
		records = append(records, fields)
	}
	return records, nil
}

func (c *FileMakerClient) do(ctx context.Context, method, url string, body map[string]any) (*http.Response, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain FileMaker token: %w", err)
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal FileMaker query: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build FileMaker request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("FileMaker request failed: %w", err)
	}
	return resp, nil
}
