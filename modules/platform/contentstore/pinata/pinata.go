package pinata

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/common/errs"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/datagateway"
	"github.com/essienricch/Nft-Creator-Haven/pkg/httpclient"
	"github.com/valyala/fasthttp"
)

type Config struct {
	APIKey    string `mapstructure:"api_key"`
	SecretKey string `mapstructure:"secret_key"`

	// BaseURL is the pinning API endpoint.
	BaseURL string `mapstructure:"base_url"`

	// GatewayURL is the public gateway prefix used to render locators as
	// resolvable URIs.
	GatewayURL string `mapstructure:"gateway_url"`
}

const (
	defaultBaseURL    = "https://api.pinata.cloud"
	defaultGatewayURL = "https://gateway.pinata.cloud/ipfs"
)

// Client stores content on IPFS through the Pinata pinning API. Uploads are
// not idempotent from the caller's point of view: whether identical content
// yields the same locator is the store's business.
type Client struct {
	httpClient *httpclient.Client
	gatewayURL string
}

var _ datagateway.ContentStorage = (*Client)(nil)

func New(cfg Config) (*Client, error) {
	cfg.BaseURL = utils.Default(cfg.BaseURL, defaultBaseURL)
	cfg.GatewayURL = utils.Default(cfg.GatewayURL, defaultGatewayURL)
	httpClient, err := httpclient.New(cfg.BaseURL, httpclient.Config{
		Headers: map[string]string{
			"pinata_api_key":        cfg.APIKey,
			"pinata_secret_api_key": cfg.SecretKey,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &Client{
		httpClient: httpClient,
		gatewayURL: strings.TrimSuffix(cfg.GatewayURL, "/"),
	}, nil
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

func (c *Client) StoreFile(ctx context.Context, data []byte, contentType string) (string, error) {
	resp, err := c.httpClient.Post(ctx, "/pinning/pinFileToIPFS", httpclient.RequestOptions{
		Multipart: []httpclient.MultipartFile{{
			FieldName:   "file",
			FileName:    "file",
			ContentType: contentType,
			Data:        data,
		}},
	})
	if err != nil {
		return "", errors.Wrap(errs.StorageUnavailable, err.Error())
	}
	return c.locatorFromResponse(resp)
}

func (c *Client) StoreJSON(ctx context.Context, doc any) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "can't marshal document")
	}
	resp, err := c.httpClient.Post(ctx, "/pinning/pinJSONToIPFS", httpclient.RequestOptions{
		Body: body,
	})
	if err != nil {
		return "", errors.Wrap(errs.StorageUnavailable, err.Error())
	}
	return c.locatorFromResponse(resp)
}

// FetchJSON resolves a stored document by its gateway URI. Used for
// best-effort descriptor resolution; callers degrade per item on failure.
func (c *Client) FetchJSON(ctx context.Context, locator string, out any) error {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(locator)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline := time.Now().Add(15 * time.Second)
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := fasthttp.DoDeadline(req, resp, deadline); err != nil {
		return errors.Wrapf(err, "can't fetch %q", locator)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return errors.Errorf("fetching %q returned status %d", locator, resp.StatusCode())
	}
	body, err := resp.BodyUncompressed()
	if err != nil {
		return errors.Wrapf(err, "can't read body from %q", locator)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "can't unmarshal document from %q", locator)
	}
	return nil
}

func (c *Client) locatorFromResponse(resp *httpclient.HttpResponse) (string, error) {
	if resp.StatusCode() != fasthttp.StatusOK {
		return "", errors.Wrapf(errs.StorageUnavailable, "pinning API returned status %d: %s", resp.StatusCode(), resp.Body())
	}
	var pinned pinResponse
	if err := resp.UnmarshalBody(&pinned); err != nil {
		return "", errors.Wrap(errs.StorageUnavailable, err.Error())
	}
	if pinned.IpfsHash == "" {
		return "", errors.Wrap(errs.StorageUnavailable, "pinning API returned empty content hash")
	}
	return c.gatewayURL + "/" + pinned.IpfsHash, nil
}
