package graphimpl

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/exploride/social-gateway/internal/graph"
	"github.com/exploride/social-gateway/pkg/config"
	"github.com/exploride/social-gateway/pkg/logger"
	"github.com/exploride/social-gateway/pkg/metrics"
)

type GraphImpl struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     logger.Logger
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *GraphImpl {
	metrics.Init()
	return &GraphImpl{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(opts.Config.Facebook.GraphBaseURL, "/"),
		token:      opts.Config.Facebook.PageToken,
		logger:     opts.Logger.WithComponent("GraphClient"),
	}
}

var _ graph.Client = (*GraphImpl)(nil)

// graphError is the error object the Graph API embeds in failure bodies.
type graphError struct {
	Message string `json:"message"`
}

// fetchJSON issues one GET against the Graph API and decodes the body into
// out. A body that is not valid JSON counts as empty, not as a failure; the
// HTTP status is returned so callers can apply their own non-2xx policy.
func (g *GraphImpl) fetchJSON(ctx context.Context, endpoint, requestURL string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	res, err := g.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamCallsTotal.WithLabelValues(endpoint, "error").Inc()
		return 0, err
	}
	defer res.Body.Close()

	metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	metrics.UpstreamCallsTotal.WithLabelValues(endpoint, strconv.Itoa(res.StatusCode)).Inc()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, err
	}

	if err := json.Unmarshal(body, out); err != nil {
		g.logger.Warn("Upstream body is not valid JSON, treating as empty",
			"endpoint", endpoint, "status", res.StatusCode)
	}
	return res.StatusCode, nil
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}
