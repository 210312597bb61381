package linkcheck

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is used when callers do not specify a per-URL timeout.
const DefaultTimeout = 10 * time.Second

// fundingKeywords are checked against the visible text of a working page to
// decide whether it still talks about funding at all.
var fundingKeywords = []string{
	"grant", "funding", "subvention", "aide", "financement",
	"scholarship", "bourse", "subsidy", "support", "program",
	"programme", "application", "deadline", "eligibility",
}

// ValidationResult is the outcome of checking one URL. It is immutable once
// produced; Validate never returns an error, every failure mode is folded in.
type ValidationResult struct {
	URL                     string  `json:"url"`
	Status                  string  `json:"status"`
	StatusCode              int     `json:"status_code,omitempty"`
	ResponseTimeMs          float64 `json:"response_time_ms,omitempty"`
	PageTitle               string  `json:"page_title,omitempty"`
	ContainsFundingKeywords bool    `json:"contains_funding_keywords"`
	ErrorMessage            string  `json:"error_message,omitempty"`
	Working                 bool    `json:"is_working"`

	// Descriptive metadata attached during batch passes.
	Title   string `json:"title,omitempty"`
	Source  string `json:"source,omitempty"`
	Country string `json:"country,omitempty"`
}

// Validator performs single-URL liveness checks. It is stateless apart from
// the shared HTTP client and safe for sequential reuse.
type Validator struct {
	Client *http.Client
}

// NewValidator returns a Validator backed by the hardened client.
func NewValidator() *Validator {
	return &Validator{Client: newHardenedClient()}
}

// Validate performs one GET against url and classifies the outcome. The URL
// must carry an http or https scheme; anything else is rejected before any
// network activity.
func (v *Validator) Validate(ctx context.Context, rawURL string, timeout time.Duration) ValidationResult {
	result := ValidationResult{URL: rawURL, Status: "Unknown"}

	if rawURL == "" || (!strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://")) {
		result.Status = "Invalid URL"
		result.ErrorMessage = "URL is empty or does not start with http/https"
		return result
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		result.Status = "Invalid URL"
		result.ErrorMessage = err.Error()
		return result
	}
	setBrowserHeaders(req)

	start := time.Now()
	resp, err := v.Client.Do(req)
	if err != nil {
		result.Status, result.ErrorMessage = classifyTransportError(err, timeout)
		return result
	}
	defer resp.Body.Close()

	result.ResponseTimeMs = float64(time.Since(start).Microseconds()) / 1000.0
	result.StatusCode = resp.StatusCode

	switch resp.StatusCode {
	case http.StatusOK:
		result.Status = "Working"
		result.Working = true
		v.inspectContent(resp, &result)
	case http.StatusNotFound:
		result.Status = "404 Not Found"
		result.ErrorMessage = "Page not found"
	case http.StatusForbidden:
		result.Status = "403 Forbidden"
		result.ErrorMessage = "Access forbidden"
	case http.StatusInternalServerError:
		result.Status = "500 Server Error"
		result.ErrorMessage = "Internal server error"
	default:
		result.Status = fmt.Sprintf("HTTP %d", resp.StatusCode)
		result.ErrorMessage = fmt.Sprintf("HTTP status code: %d", resp.StatusCode)
	}

	return result
}

// inspectContent enriches a working result with the page title and funding
// keyword presence. A parse failure never downgrades the Working flag.
func (v *Validator) inspectContent(resp *http.Response, result *ValidationResult) {
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		result.ErrorMessage = fmt.Sprintf("Content parsing failed: %v", err)
		return
	}

	result.PageTitle = strings.TrimSpace(doc.Find("title").First().Text())

	pageText := strings.ToLower(doc.Text())
	for _, keyword := range fundingKeywords {
		if strings.Contains(pageText, keyword) {
			result.ContainsFundingKeywords = true
			break
		}
	}
}

func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
}

func classifyTransportError(err error, timeout time.Duration) (status, message string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return "Timeout", fmt.Sprintf("Request timed out after %s", timeout)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "Timeout", fmt.Sprintf("Request timed out after %s", timeout)
	}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	if errors.As(err, &dnsErr) || errors.As(err, &opErr) {
		return "Connection Error", "Could not connect to server"
	}

	return "Request Error", err.Error()
}
