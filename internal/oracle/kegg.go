package oracle

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/CultureBotAI/assay-metadata/internal/log"
	"github.com/CultureBotAI/assay-metadata/internal/validate"
)

// DefaultKeggBaseURL is the KEGG REST endpoint.
const DefaultKeggBaseURL = "https://rest.kegg.jp"

// KeggClient verifies orthology-group IDs against KEGG.
type KeggClient struct {
	baseURL string
	http    *http.Client
}

// NewKeggClient returns a client against baseURL; an empty baseURL
// selects the public endpoint.
func NewKeggClient(baseURL string, httpClient *http.Client) *KeggClient {
	if baseURL == "" {
		baseURL = DefaultKeggBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &KeggClient{baseURL: baseURL, http: httpClient}
}

// Verify asks KEGG whether ko resolves. KEGG answers flat text; the
// NAME line, when present, is recorded as the resolved name.
func (c *KeggClient) Verify(ctx context.Context, ko string) Verdict {
	url := fmt.Sprintf("%s/get/%s", c.baseURL, ko)

	verdict, err := backoff.Retry(ctx, func() (Verdict, error) {
		return c.fetch(ctx, url, ko)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(maxTries))
	if err != nil {
		log.Warn(log.CatOracle, "kegg lookup exhausted retries", "ko", ko, "error", err.Error())
		return Verdict{
			Namespace: NamespaceKegg,
			ID:        ko,
			Status:    validate.StatusUnverified,
			Detail:    err.Error(),
			CheckedAt: time.Now().UTC(),
		}
	}
	return verdict
}

func (c *KeggClient) fetch(ctx context.Context, url, ko string) (Verdict, error) {
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return Verdict{}, backoff.Permanent(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Verdict{}, err
	}
	defer resp.Body.Close()

	verdict := Verdict{Namespace: NamespaceKegg, ID: ko, CheckedAt: time.Now().UTC()}
	switch {
	case resp.StatusCode == http.StatusOK:
		verdict.Status = validate.StatusValid
		verdict.Name = keggName(resp.Body)
		return verdict, nil
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		verdict.Status = validate.StatusInvalid
		verdict.Detail = fmt.Sprintf("HTTP %d", resp.StatusCode)
		return verdict, nil
	default:
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return Verdict{}, fmt.Errorf("kegg ko %s: HTTP %d", ko, resp.StatusCode)
	}
}

// keggName pulls the NAME line out of a KEGG flat-file record.
func keggName(body io.Reader) string {
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "NAME") {
			return strings.TrimSpace(strings.TrimPrefix(line, "NAME"))
		}
	}
	return ""
}
