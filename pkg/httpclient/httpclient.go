package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/pkg/logger"
	"github.com/valyala/fasthttp"
)

type Config struct {
	// Enable debug mode
	Debug bool

	// Default headers
	Headers map[string]string
}

type Client struct {
	baseURL *url.URL
	Config
}

func New(baseURL string, config ...Config) (*Client, error) {
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "can't parse base url")
	}
	var cf Config
	if len(config) > 0 {
		cf = config[0]
	}
	if len(cf.Headers) == 0 {
		cf.Headers = make(map[string]string)
	}
	return &Client{
		baseURL: parsedBaseURL,
		Config:  cf,
	}, nil
}

func (h *Client) BaseURL() url.URL {
	return *h.baseURL
}

// MultipartFile is a single file part of a multipart/form-data request body.
type MultipartFile struct {
	FieldName   string
	FileName    string
	ContentType string
	Data        []byte
}

type RequestOptions struct {
	path   string
	method string
	Body   []byte
	Query  url.Values
	Header map[string]string

	// FormData is encoded as application/x-www-form-urlencoded.
	FormData url.Values

	// Multipart files and fields are encoded as multipart/form-data.
	// Takes precedence over Body and FormData.
	Multipart       []MultipartFile
	MultipartFields map[string]string
}

type HttpResponse struct {
	URL string
	fasthttp.Response
}

func (r *HttpResponse) UnmarshalBody(out any) error {
	body, err := r.BodyUncompressed()
	if err != nil {
		return errors.Wrapf(err, "can't uncompress body from %v", r.URL)
	}
	contentType := strings.ToLower(string(r.Header.ContentType()))
	switch {
	case strings.HasPrefix(contentType, "application/json"):
		if err := json.Unmarshal(body, out); err != nil {
			return errors.Wrapf(err, "can't unmarshal json body from %s, %q", r.URL, string(body))
		}
		return nil
	default:
		return errors.Errorf("unsupported content type: %s, contents: %v", contentType, string(body))
	}
}

func (h *Client) request(ctx context.Context, reqOptions RequestOptions) (*HttpResponse, error) {
	start := time.Now()
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.Header.SetMethod(reqOptions.method)
	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range reqOptions.Header {
		req.Header.Set(k, v)
	}

	parsedUrl := h.BaseURL()
	parsedUrl.Path = path.Join(parsedUrl.Path, reqOptions.path)
	parsedUrl.RawQuery = reqOptions.Query.Encode()
	url := parsedUrl.String()
	req.SetRequestURI(url)

	switch {
	case len(reqOptions.Multipart) > 0 || len(reqOptions.MultipartFields) > 0:
		body, contentType, err := encodeMultipart(reqOptions.Multipart, reqOptions.MultipartFields)
		if err != nil {
			return nil, errors.Wrap(err, "can't encode multipart body")
		}
		req.Header.SetContentType(contentType)
		req.SetBody(body)
	case reqOptions.Body != nil:
		req.Header.SetContentType("application/json")
		req.SetBody(reqOptions.Body)
	case reqOptions.FormData != nil:
		req.Header.SetContentType("application/x-www-form-urlencoded")
		req.SetBodyString(reqOptions.FormData.Encode())
	}

	resp := fasthttp.AcquireResponse()

	deadline := time.Now().Add(30 * time.Second)
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := fasthttp.DoDeadline(req, resp, deadline); err != nil {
		fasthttp.ReleaseResponse(resp)
		return nil, errors.Wrapf(err, "can't send request to %v", url)
	}

	if h.Debug {
		logger.DebugContext(ctx, "http request completed",
			slog.String("method", reqOptions.method),
			slog.String("url", url),
			slog.Int("status", resp.StatusCode()),
			slog.Duration("duration", time.Since(start)),
		)
	}

	return &HttpResponse{URL: url, Response: *resp}, nil
}

func (h *Client) Get(ctx context.Context, path string, options ...RequestOptions) (*HttpResponse, error) {
	reqOptions := firstOrZero(options)
	reqOptions.path = path
	reqOptions.method = fasthttp.MethodGet
	return h.request(ctx, reqOptions)
}

func (h *Client) Post(ctx context.Context, path string, options ...RequestOptions) (*HttpResponse, error) {
	reqOptions := firstOrZero(options)
	reqOptions.path = path
	reqOptions.method = fasthttp.MethodPost
	return h.request(ctx, reqOptions)
}

func encodeMultipart(files []MultipartFile, fields map[string]string) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", errors.WithStack(err)
		}
	}
	for _, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+file.FieldName+`"; filename="`+file.FileName+`"`)
		if file.ContentType != "" {
			header.Set("Content-Type", file.ContentType)
		}
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", errors.WithStack(err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", errors.WithStack(err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", errors.WithStack(err)
	}
	return buf.Bytes(), writer.FormDataContentType(), nil
}

func firstOrZero(options []RequestOptions) RequestOptions {
	if len(options) > 0 {
		return options[0]
	}
	return RequestOptions{}
}
