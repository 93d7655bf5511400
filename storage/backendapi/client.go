package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/FidelisKagashe26/godcares/core"
)

// Client talks JSON to the content API. It never retries: every error is terminal
// for the action that triggered it.
type Client struct {
	baseURL string
	rest    *rest.Client
	logger  core.Logger
}

func NewClient(conf *core.Config, logger core.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.API.BaseURL, "/"),
		rest:    &rest.Client{HTTPClient: &http.Client{Timeout: conf.API.Timeout}},
		logger:  logger,
	}
}

// NewClientWithHTTP is used by tests to plug in a custom *http.Client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger core.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		rest:    &rest.Client{HTTPClient: httpClient},
		logger:  logger,
	}
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, dst interface{}) error {
	req := rest.Request{
		Method:      rest.Get,
		BaseURL:     c.url(path),
		Headers:     map[string]string{"Accept": "application/json"},
		QueryParams: query,
	}
	return c.send(ctx, path, req, dst)
}

// getList decodes either a bare JSON array or a paginated {"results": [...]} envelope.
func (c *Client) getList(ctx context.Context, path string, dst interface{}) error {
	var raw json.RawMessage
	if err := c.get(ctx, path, nil, &raw); err != nil {
		return err
	}
	return decodeList(path, raw, dst)
}

func (c *Client) post(ctx context.Context, path string, body, dst interface{}) error {
	var data []byte
	if body != nil {
		var err error
		if data, err = json.Marshal(body); err != nil {
			return errors.Wrapf(err, "encoding %s body", path)
		}
	}
	req := rest.Request{
		Method:  rest.Post,
		BaseURL: c.url(path),
		Headers: map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
		},
		Body: data,
	}
	return c.send(ctx, path, req, dst)
}

// postMultipart posts fields plus one optional file as multipart/form-data.
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, file *core.Upload, dst interface{}) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	// stable field order
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return errors.Wrapf(err, "writing field %q", k)
		}
	}

	if !file.Empty() {
		ct := file.ContentType
		if ct == "" {
			ct = http.DetectContentType(file.Data)
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Filename))
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return errors.Wrap(err, "creating file part")
		}
		if _, err = part.Write(file.Data); err != nil {
			return errors.Wrap(err, "writing file part")
		}
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "closing multipart writer")
	}

	req := rest.Request{
		Method:  rest.Post,
		BaseURL: c.url(path),
		Headers: map[string]string{
			"Accept":       "application/json",
			"Content-Type": w.FormDataContentType(),
		},
		Body: body.Bytes(),
	}
	return c.send(ctx, path, req, dst)
}

func (c *Client) send(ctx context.Context, path string, req rest.Request, dst interface{}) error {
	httpReq, err := rest.BuildRequestObject(req)
	if err != nil {
		return errors.Wrapf(err, "building %s %s", req.Method, path)
	}
	// the context carries the per-call deadline and the loader's cancellation
	httpRes, err := c.rest.MakeRequest(httpReq.WithContext(ctx))
	if err != nil {
		return errors.Wrapf(err, "%s %s", req.Method, path)
	}
	res, err := rest.BuildResponse(httpRes)
	if err != nil {
		return errors.Wrapf(err, "reading %s %s", req.Method, path)
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		apiErr := &core.APIError{Status: res.StatusCode, Path: path, Detail: parseDetail(res.Body)}
		c.logger.Warn(fmt.Sprintf("%s %s: %v", req.Method, path, apiErr))
		return apiErr
	}
	if dst == nil || strings.TrimSpace(res.Body) == "" {
		return nil
	}
	if err = json.Unmarshal([]byte(res.Body), dst); err != nil {
		return errors.Wrapf(err, "decoding %s response", path)
	}
	return nil
}

func decodeList(path string, raw json.RawMessage, dst interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '{' {
		var page struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return errors.Wrapf(err, "decoding %s page", path)
		}
		if len(page.Results) == 0 {
			return nil
		}
		trimmed = page.Results
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return errors.Wrapf(err, "decoding %s list", path)
	}
	return nil
}

// parseDetail extracts the `detail` message of an error body, if any.
// Field error maps ({"email": ["..."]}) are flattened to "email: ...".
func parseDetail(body string) string {
	body = strings.TrimSpace(body)
	if body == "" || body[0] != '{' {
		return ""
	}
	var withDetail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal([]byte(body), &withDetail); err == nil && withDetail.Detail != "" {
		return withDetail.Detail
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var msgs []string
		if err := json.Unmarshal(fields[k], &msgs); err == nil && len(msgs) > 0 {
			return k + ": " + msgs[0]
		}
		var msg string
		if err := json.Unmarshal(fields[k], &msg); err == nil && msg != "" {
			return k + ": " + msg
		}
	}
	return ""
}
