package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// NewHTTPClient builds the client used for remote fetches.
func NewHTTPClient(cfg Config) *http.Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeoutDuration,
	}
}

// RemoteFetch downloads an archive over HTTP(S). No retries are performed.
type RemoteFetch struct {
	URL       string
	Client    *http.Client
	UserAgent string
	// MaxBytes caps the body size; zero means no limit.
	MaxBytes int64
}

// Name returns the URL.
func (r RemoteFetch) Name() string {
	return r.URL
}

// Open downloads the archive into memory. When the URL serves an HTML page, the first
// .pk3 link on that page is downloaded instead.
func (r RemoteFetch) Open(ctx context.Context) (Blob, error) {
	data, html, err := r.get(ctx, r.URL)
	if err != nil {
		return nil, err
	}
	if !html {
		return newMemBlob(data), nil
	}

	link, err := findArchiveLink(r.URL, data)
	if err != nil {
		return nil, &UnavailableError{Source: r.URL, Err: err}
	}
	data, html, err = r.get(ctx, link)
	if err != nil {
		return nil, err
	}
	if html {
		return nil, &UnavailableError{Source: link, Err: fmt.Errorf("linked archive is an HTML page")}
	}
	return newMemBlob(data), nil
}

func (r RemoteFetch) get(ctx context.Context, target string) ([]byte, bool, error) {
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, false, &UnavailableError{Source: target, Err: err}
	}
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, false, &UnavailableError{Source: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, false, &UnavailableError{
			Source:     target,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var body io.Reader = resp.Body
	if r.MaxBytes > 0 {
		body = io.LimitReader(resp.Body, r.MaxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, false, &UnavailableError{Source: target, Err: err}
	}
	if r.MaxBytes > 0 && int64(len(data)) > r.MaxBytes {
		return nil, false, &UnavailableError{Source: target, Err: ErrTooLarge}
	}

	return data, isHTML(resp.Header.Get("Content-Type"), data), nil
}

func isHTML(contentType string, data []byte) bool {
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "text/html" || mt == "application/xhtml+xml"
}

// findArchiveLink returns the absolute URL of the first .pk3 link of an HTML page.
func findArchiveLink(pageURL string, page []byte) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", err
	}

	var link string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return true
		}
		if !strings.HasSuffix(strings.ToLower(ref.Path), ".pk3") {
			return true
		}
		link = base.ResolveReference(ref).String()
		return false
	})
	if link == "" {
		return "", ErrNoArchiveLink
	}
	return link, nil
}
