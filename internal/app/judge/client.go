// Package judge talks to the external code-execution service (a Judge0-compatible API).
package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/chandraguptgosavi/codemore-backend/internal/common"
	"github.com/chandraguptgosavi/codemore-backend/internal/domain/model"
	"github.com/chandraguptgosavi/codemore-backend/internal/platform/metrics"

	log "github.com/sirupsen/logrus"
)

// Request is one execution. ExpectedOutput is set only when grading.
type Request struct {
	SourceCode     string
	LanguageID     int
	Stdin          string
	ExpectedOutput *string
}

type Options struct {
	BaseURL       string
	APIHost       string
	APIKey        string
	CPUTimeLimit  string // seconds, e.g. "2.0"
	MemoryLimitKb int
	HTTPClient    *http.Client
	Cooldown      *Cooldown
}

type Client struct {
	httpClient    *http.Client
	endpoint      string
	apiHost       string
	apiKey        string
	cpuTimeLimit  string
	memoryLimitKb string
	cooldown      *Cooldown
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient:    httpClient,
		endpoint:      strings.TrimRight(opts.BaseURL, "/") + "/submissions/?wait=true",
		apiHost:       opts.APIHost,
		apiKey:        opts.APIKey,
		cpuTimeLimit:  opts.CPUTimeLimit,
		memoryLimitKb: strconv.Itoa(opts.MemoryLimitKb),
		cooldown:      opts.Cooldown,
	}
}

type submissionPayload struct {
	SourceCode     string  `json:"source_code"`
	LanguageID     int     `json:"language_id"`
	Stdin          string  `json:"stdin"`
	ExpectedOutput *string `json:"expected_output,omitempty"`
	CPUTimeLimit   string  `json:"cpu_time_limit"`
	MemoryLimit    string  `json:"memory_limit"`
}

// Run executes req synchronously and returns the verdict. A 429 from the judge, or an
// open cooldown window, yields common.ErrRateLimited. Nothing is retried.
func (c *Client) Run(ctx context.Context, req Request) (*model.Verdict, error) {
	if c.cooldown.Active(ctx) {
		metrics.ObserveJudgeCall(metrics.JudgeOutcomeCooldown, 0)
		return nil, fmt.Errorf("judge cooldown in effect: %w", common.ErrRateLimited)
	}

	body, err := json.Marshal(submissionPayload{
		SourceCode:     req.SourceCode,
		LanguageID:     req.LanguageID,
		Stdin:          req.Stdin,
		ExpectedOutput: req.ExpectedOutput,
		CPUTimeLimit:   c.cpuTimeLimit,
		MemoryLimit:    c.memoryLimitKb,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal judge request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create judge request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-RapidAPI-Host", c.apiHost)
	httpReq.Header.Set("X-RapidAPI-Key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.ObserveJudgeCall(metrics.JudgeOutcomeError, time.Since(start))
		return nil, fmt.Errorf("judge request failed: %v: %w", err, common.ErrInternalServer)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		metrics.ObserveJudgeCall(metrics.JudgeOutcomeRateLimited, time.Since(start))
		c.cooldown.Trip(ctx, parseRetryAfter(resp.Header.Get("Retry-After")))
		return nil, common.ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ObserveJudgeCall(metrics.JudgeOutcomeError, time.Since(start))
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.WithFields(log.Fields{"status": resp.StatusCode, "body": string(snippet)}).Error("judge returned an error response")
		return nil, fmt.Errorf("judge returned status %d: %w", resp.StatusCode, common.ErrInternalServer)
	}

	var verdict model.Verdict
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		metrics.ObserveJudgeCall(metrics.JudgeOutcomeError, time.Since(start))
		return nil, fmt.Errorf("failed to decode judge response: %v: %w", err, common.ErrInternalServer)
	}
	if verdict.Status.ID == 0 || verdict.Status.Description == "" {
		metrics.ObserveJudgeCall(metrics.JudgeOutcomeError, time.Since(start))
		return nil, fmt.Errorf("judge verdict has no status: %w", common.ErrInternalServer)
	}

	metrics.ObserveJudgeCall(metrics.JudgeOutcomeOK, time.Since(start))
	return &verdict, nil
}

// parseRetryAfter accepts delta-seconds or an HTTP date. Unparseable values yield 0.
func parseRetryAfter(v string) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
