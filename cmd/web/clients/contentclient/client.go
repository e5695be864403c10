package contentclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"blog-list/cmd/web/httpclient"
	"blog-list/models"
)

// Client 는 블로그 포스트 목록을 내려주는 외부 콘텐츠 API 의 얇은 클라이언트다.
//
// postsURL 예: https://cms.example.com/api/blog-posts
type Client struct {
	base *httpclient.BaseClient
}

// StatusError 는 콘텐츠 API 가 2xx 가 아닌 응답을 준 경우다.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("content api ListPosts: status=%d body=%s", e.StatusCode, e.Body)
}

func New(postsURL string, cfg httpclient.Config) *Client {
	return &Client{base: httpclient.NewBaseClient(postsURL, cfg)}
}

// NewWithHTTPClient 는 주어진 http.Client 를 그대로 쓴다. 테스트에서 httptest 서버를 가리킬 때 쓴다.
func NewWithHTTPClient(httpClient *http.Client, postsURL string) *Client {
	return &Client{base: httpclient.NewBaseClientWithClient(httpClient, postsURL)}
}

// ListPosts 는 포스트 엔드포인트를 GET 하고 JSON 배열을 디코딩한다.
// 2xx 가 아닌 응답은 *StatusError 로 돌려준다.
func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	req, err := c.base.NewRequest(ctx, http.MethodGet, "", nil, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out []models.Post
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return out, nil
}
