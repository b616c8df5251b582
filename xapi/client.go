package xapi

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/imdario/mergo"
	"github.com/pkg/errors"

	"github.com/panosdev/panconf/panerr"
	"github.com/panosdev/panconf/xmlutil"
)

// Config contains Client configuration. Zero fields take DefaultConfig
// values.
type Config struct {
	// Hostname or IP of the device API endpoint (required)
	Hostname string
	// Port of the device API endpoint
	Port int
	// Username and Password are exchanged for an API key on first use
	// when APIKey is empty. Neither is stored beyond the exchange.
	Username string
	Password string
	// APIKey authenticates every request when set
	APIKey string
	// Serial, when set, is passed as the request target parameter so that
	// requests reach a managed firewall through its management server
	// rather than directly.
	Serial string
	// Timeout bounds each API request
	Timeout time.Duration
	// InsecureSkipVerify disables TLS certificate verification. Device
	// management interfaces commonly present self-signed certificates.
	InsecureSkipVerify bool
	// HTTPClient overrides the constructed client when non-nil
	HTTPClient *http.Client
}

// DefaultConfig holds the values merged into zero Config fields.
var DefaultConfig = Config{
	Port:    443,
	Timeout: 120 * time.Second,
}

// Client is the HTTPS XML API Transport implementation.
type Client struct {
	cfg    Config
	http   *http.Client
	apiKey string
}

var _ Transport = (*Client)(nil)

// NewClient returns a Client for cfg. Either an APIKey or a
// Username/Password pair must be supplied; with only the latter, an API key
// is fetched lazily on the first request.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Hostname == "" {
		return nil, errors.New("xapi: config requires a hostname")
	}
	if err := mergo.Merge(&cfg, DefaultConfig); err != nil {
		return nil, errors.Wrap(err, "xapi: merging config defaults")
	}
	if cfg.APIKey == "" && (cfg.Username == "" || cfg.Password == "") {
		return nil, errors.New("xapi: config requires an API key or credentials")
	}
	c := &Client{cfg: cfg, http: cfg.HTTPClient, apiKey: cfg.APIKey}
	if c.http == nil {
		c.http = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}, // #nosec G402
			},
		}
	}
	return c, nil
}

// Hostname returns the configured API endpoint host.
func (c *Client) Hostname() string { return c.cfg.Hostname }

func (c *Client) Get(ctx context.Context, xp string) (*xmlquery.Node, error) {
	return c.config(ctx, "get", xp, "")
}

func (c *Client) Show(ctx context.Context, xp string) (*xmlquery.Node, error) {
	return c.config(ctx, "show", xp, "")
}

func (c *Client) Set(ctx context.Context, xp, element string) (*xmlquery.Node, error) {
	return c.config(ctx, "set", xp, element)
}

func (c *Client) Edit(ctx context.Context, xp, element string) (*xmlquery.Node, error) {
	return c.config(ctx, "edit", xp, element)
}

func (c *Client) Delete(ctx context.Context, xp string) (*xmlquery.Node, error) {
	return c.config(ctx, "delete", xp, "")
}

func (c *Client) Op(ctx context.Context, cmd, vsys string) (*xmlquery.Node, error) {
	q := url.Values{}
	q.Set("type", "op")
	q.Set("cmd", cmd)
	if vsys != "" {
		q.Set("vsys", vsys)
	}
	return c.authed(ctx, "op", "", q)
}

func (c *Client) config(ctx context.Context, action, xp, element string) (*xmlquery.Node, error) {
	q := url.Values{}
	q.Set("type", "config")
	q.Set("action", action)
	q.Set("xpath", xp)
	if element != "" {
		q.Set("element", element)
	}
	return c.authed(ctx, action, xp, q)
}

func (c *Client) authed(ctx context.Context, action, xp string, q url.Values) (*xmlquery.Node, error) {
	key, err := c.key(ctx)
	if err != nil {
		return nil, err
	}
	q.Set("key", key)
	if c.cfg.Serial != "" {
		q.Set("target", c.cfg.Serial)
	}
	trace := ContextClientTrace(ctx)
	trace.RequestStart(action, xp)
	start := time.Now()
	doc, err := c.roundTrip(ctx, q)
	trace.RequestDone(action, xp, err, time.Since(start))
	if err != nil {
		trace.Error("request", c.cfg.Hostname, err)
	}
	return doc, err
}

// key returns the API key, fetching one with the configured credentials on
// first use.
func (c *Client) key(ctx context.Context) (string, error) {
	if c.apiKey != "" {
		return c.apiKey, nil
	}
	trace := ContextClientTrace(ctx)
	trace.KeygenStart(c.cfg.Hostname, c.cfg.Username)
	start := time.Now()
	q := url.Values{}
	q.Set("type", "keygen")
	q.Set("user", c.cfg.Username)
	q.Set("password", c.cfg.Password)
	doc, err := c.roundTrip(ctx, q)
	if err == nil {
		if key := xmlutil.Text(xmlquery.QuerySelector(doc, xpKey)); key != "" {
			c.apiKey = key
		} else {
			err = &panerr.RemoteError{Kind: panerr.RemoteMalformed, Message: "keygen response missing key element"}
		}
	}
	trace.KeygenDone(c.cfg.Hostname, c.cfg.Username, err, time.Since(start))
	if err != nil {
		trace.Error("keygen", c.cfg.Hostname, err)
		return "", err
	}
	return c.apiKey, nil
}

func (c *Client) roundTrip(ctx context.Context, q url.Values) (*xmlquery.Node, error) {
	endpoint := url.URL{
		Scheme: "https",
		Host:   c.cfg.Hostname + ":" + strconv.Itoa(c.cfg.Port),
		Path:   "/api/",
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(q.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "xapi: building request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "xapi: request failed")
	}
	defer resp.Body.Close()

	doc, err := xmlquery.Parse(resp.Body)
	if err != nil {
		return nil, &panerr.RemoteError{Kind: panerr.RemoteMalformed, Message: err.Error()}
	}
	response := xmlquery.QuerySelector(doc, xpResponse)
	if response == nil {
		return nil, &panerr.RemoteError{Kind: panerr.RemoteMalformed, Message: "document has no <response> element"}
	}
	if status := xmlutil.Attr(response, "status"); status != "success" {
		return nil, panerr.ClassifyRemote(status, xmlutil.Attr(response, "code"), responseMessage(doc))
	}
	return doc, nil
}

// responseMessage collects the failure message lines the API scatters
// across a few envelope shapes.
func responseMessage(doc *xmlquery.Node) string {
	var lines []string
	for _, n := range xmlquery.QuerySelectorAll(doc, xpMsgLine) {
		if text := xmlutil.Text(n); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "; ")
}

var (
	xpResponse = xpath.MustCompile(`/response`)
	xpMsgLine  = xpath.MustCompile(`/response/msg/line | /response/result/msg | /response/msg[not(line)]`)
	xpKey      = xpath.MustCompile(`/response/result/key`)
)
