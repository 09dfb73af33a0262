package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/CultureBotAI/assay-metadata/internal/log"
	"github.com/CultureBotAI/assay-metadata/internal/validate"
)

// DefaultPubchemBaseURL is the PubChem PUG REST endpoint.
const DefaultPubchemBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

const (
	requestTimeout = 5 * time.Second
	maxTries       = 3
)

// PubchemClient verifies compound IDs against PubChem.
type PubchemClient struct {
	baseURL string
	http    *http.Client
}

// NewPubchemClient returns a client against baseURL; an empty baseURL
// selects the public endpoint.
func NewPubchemClient(baseURL string, httpClient *http.Client) *PubchemClient {
	if baseURL == "" {
		baseURL = DefaultPubchemBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &PubchemClient{baseURL: baseURL, http: httpClient}
}

type pubchemDescription struct {
	InformationList struct {
		Information []struct {
			Title string `json:"Title"`
		} `json:"Information"`
	} `json:"InformationList"`
}

// Verify asks PubChem whether cid resolves. A definitive HTTP answer
// becomes valid or invalid; retry exhaustion becomes unverified.
func (c *PubchemClient) Verify(ctx context.Context, cid string) Verdict {
	url := fmt.Sprintf("%s/compound/cid/%s/description/JSON", c.baseURL, cid)

	verdict, err := backoff.Retry(ctx, func() (Verdict, error) {
		return c.fetch(ctx, url, cid)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(maxTries))
	if err != nil {
		log.Warn(log.CatOracle, "pubchem lookup exhausted retries", "cid", cid, "error", err.Error())
		return Verdict{
			Namespace: NamespacePubchem,
			ID:        cid,
			Status:    validate.StatusUnverified,
			Detail:    err.Error(),
			CheckedAt: time.Now().UTC(),
		}
	}
	return verdict
}

func (c *PubchemClient) fetch(ctx context.Context, url, cid string) (Verdict, error) {
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

	verdict := Verdict{Namespace: NamespacePubchem, ID: cid, CheckedAt: time.Now().UTC()}
	switch {
	case resp.StatusCode == http.StatusOK:
		verdict.Status = validate.StatusValid
		var desc pubchemDescription
		if err := json.NewDecoder(resp.Body).Decode(&desc); err == nil &&
			len(desc.InformationList.Information) > 0 {
			verdict.Name = desc.InformationList.Information[0].Title
		}
		return verdict, nil
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		verdict.Status = validate.StatusInvalid
		verdict.Detail = fmt.Sprintf("HTTP %d", resp.StatusCode)
		return verdict, nil
	default:
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return Verdict{}, fmt.Errorf("pubchem cid %s: HTTP %d", cid, resp.StatusCode)
	}
}
