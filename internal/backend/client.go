package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"recruit-backend/internal/contract"
	"recruit-backend/internal/shared/metrics"
	"recruit-backend/internal/shared/telemetry"
)

const (
	OpListCompanies             = "ListCompanies"
	OpCreateCompany             = "CreateCompany"
	OpListJobPostings           = "ListJobPostings"
	OpGetJobPosting             = "GetJobPosting"
	OpCreateJobPosting          = "CreateJobPosting"
	OpUpdateJobPosting          = "UpdateJobPosting"
	OpGetPublicJobPosting       = "GetPublicJobPosting"
	OpListApplications          = "ListApplications"
	OpListApplicationsByPosting = "ListApplicationsByPosting"
	OpSubmitApplication         = "SubmitApplication"
	OpGetApplicationDetails     = "GetApplicationDetails"
	OpUpdateEvaluation          = "UpdateEvaluation"
	OpGetEvaluationResult       = "GetEvaluationResult"
	OpListEvaluationResults     = "ListEvaluationResults"
)

const maxResponseBytes = 8 << 20

// Options configures a Client.
type Options struct {
	Timeout        time.Duration
	HTTPClient     *http.Client
	BreakerEnabled bool
	// BreakerSettings overrides the default breaker thresholds when non-nil.
	BreakerSettings *gobreaker.Settings
}

// Client calls the recruiting REST API. Calls are never retried.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[response]
}

type response struct {
	status int
	body   []byte
}

// NewClient constructs a Client for baseURL (for example http://backend:8080).
func NewClient(baseURL string, opts Options) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("backend base url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	c := &Client{baseURL: baseURL, http: hc}
	if opts.BreakerEnabled {
		c.breaker = gobreaker.NewCircuitBreaker[response](breakerSettings(opts.BreakerSettings))
	}
	return c, nil
}

func breakerSettings(override *gobreaker.Settings) gobreaker.Settings {
	if override != nil {
		return *override
	}
	return gobreaker.Settings{
		Name:        "recruiting-backend",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			telemetry.Warn("backend.breaker_state", map[string]any{
				"name": name,
				"from": from.String(),
				"to":   to.String(),
			})
		},
	}
}

func (c *Client) ListCompanies(ctx context.Context) ([]contract.Company, error) {
	var out []contract.Company
	err := c.do(ctx, OpListCompanies, http.MethodGet, "/companies", nil, &out)
	return out, err
}

func (c *Client) CreateCompany(ctx context.Context, req contract.CreateCompanyRequest) (contract.Company, error) {
	var out contract.Company
	err := c.do(ctx, OpCreateCompany, http.MethodPost, "/companies", req, &out)
	return out, err
}

func (c *Client) ListJobPostings(ctx context.Context) ([]contract.JobPosting, error) {
	var out []contract.JobPosting
	err := c.do(ctx, OpListJobPostings, http.MethodGet, "/job-postings", nil, &out)
	return out, err
}

func (c *Client) GetJobPosting(ctx context.Context, id string) (contract.JobPosting, error) {
	var out contract.JobPosting
	err := c.do(ctx, OpGetJobPosting, http.MethodGet, "/job-postings/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) CreateJobPosting(ctx context.Context, req contract.JobPostingRequest) (contract.JobPosting, error) {
	var out contract.JobPosting
	err := c.do(ctx, OpCreateJobPosting, http.MethodPost, "/job-postings", req, &out)
	return out, err
}

func (c *Client) UpdateJobPosting(ctx context.Context, id string, req contract.JobPostingRequest) (contract.JobPosting, error) {
	var out contract.JobPosting
	err := c.do(ctx, OpUpdateJobPosting, http.MethodPut, "/job-postings/"+url.PathEscape(id), req, &out)
	return out, err
}

func (c *Client) GetPublicJobPosting(ctx context.Context, id string) (contract.PublicJobPosting, error) {
	var out contract.PublicJobPosting
	err := c.do(ctx, OpGetPublicJobPosting, http.MethodGet, "/job-postings/public/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) ListApplications(ctx context.Context) ([]contract.Application, error) {
	var out []contract.Application
	err := c.do(ctx, OpListApplications, http.MethodGet, "/applications", nil, &out)
	return out, err
}

func (c *Client) ListApplicationsByPosting(ctx context.Context, postingID string) ([]contract.Application, error) {
	var out []contract.Application
	err := c.do(ctx, OpListApplicationsByPosting, http.MethodGet, "/applications/job-postings/"+url.PathEscape(postingID), nil, &out)
	return out, err
}

func (c *Client) SubmitApplication(ctx context.Context, postingID string, req contract.SubmitApplicationRequest) (contract.Application, error) {
	var out contract.Application
	err := c.do(ctx, OpSubmitApplication, http.MethodPost, "/applications/job-postings/"+url.PathEscape(postingID), req, &out)
	return out, err
}

func (c *Client) GetApplicationDetails(ctx context.Context, id string) (contract.ApplicationDetails, error) {
	var out contract.ApplicationDetails
	err := c.do(ctx, OpGetApplicationDetails, http.MethodGet, "/applications/"+url.PathEscape(id)+"/details", nil, &out)
	return out, err
}

func (c *Client) UpdateEvaluation(ctx context.Context, id string, req contract.EvaluationUpdate) (contract.Application, error) {
	var out contract.Application
	err := c.do(ctx, OpUpdateEvaluation, http.MethodPut, "/applications/"+url.PathEscape(id)+"/evaluation", req, &out)
	return out, err
}

func (c *Client) GetEvaluationResult(ctx context.Context, id string) (*contract.EvaluationResult, error) {
	var out contract.EvaluationResult
	if err := c.do(ctx, OpGetEvaluationResult, http.MethodGet, "/applications/"+url.PathEscape(id)+"/evaluation-result", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListEvaluationResults(ctx context.Context, postingID string) ([]contract.EvaluationResultEntry, error) {
	var out []contract.EvaluationResultEntry
	err := c.do(ctx, OpListEvaluationResults, http.MethodGet, "/applications/job-postings/"+url.PathEscape(postingID)+"/evaluation-results", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	err := c.doOnce(ctx, op, method, path, in, out)
	if err != nil {
		kind := KindOf(err)
		if kind == "" {
			kind = KindNetwork
		}
		metrics.IncUpstreamError(op, string(kind))
		telemetry.Warn("backend.call_failed", map[string]any{
			"op":     op,
			"method": method,
			"path":   path,
			"kind":   string(kind),
			"error":  err,
		})
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend %s: encode request: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("backend %s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.send(op, req)
	if err != nil {
		return err
	}

	switch {
	case resp.status == http.StatusNotFound:
		return &Error{Op: op, Status: resp.status, Kind: KindNotFound}
	case resp.status == http.StatusBadRequest || resp.status == http.StatusUnprocessableEntity:
		return &Error{Op: op, Status: resp.status, Kind: KindValidation}
	case resp.status < 200 || resp.status > 299:
		return &Error{Op: op, Status: resp.status, Kind: KindStatus}
	}
	if out == nil || len(bytes.TrimSpace(resp.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return &Error{Op: op, Status: resp.status, Kind: KindDecode, Err: err}
	}
	return nil
}

// send performs the round trip. Transport errors and 5xx answers count as
// breaker failures; 4xx answers do not.
func (c *Client) send(op string, req *http.Request) (response, error) {
	roundTrip := func() (response, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return response{}, &Error{Op: op, Kind: KindNetwork, Err: err}
		}
		defer resp.Body.Close()
		data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return response{}, &Error{Op: op, Status: resp.StatusCode, Kind: KindNetwork, Err: err}
		}
		out := response{status: resp.StatusCode, body: data}
		if resp.StatusCode >= 500 {
			return out, &Error{Op: op, Status: resp.StatusCode, Kind: KindStatus}
		}
		return out, nil
	}
	if c.breaker == nil {
		return roundTrip()
	}
	resp, err := c.breaker.Execute(roundTrip)
	if err != nil {
		return resp, classifyBreakerErr(op, err)
	}
	return resp, nil
}
