package account

import (
	"context"
	"io"
	"strings"

	"openwiki-client/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc    func(ctx context.Context, url string) (interfaces.Response, error)
	postFunc   func(ctx context.Context, url string, body io.Reader) (interfaces.Response, error)
	putFunc    func(ctx context.Context, url string, body io.Reader) (interfaces.Response, error)
	deleteFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	if m.postFunc != nil {
		return m.postFunc(ctx, url, body)
	}
	return nil, nil
}

func (m *mockHTTPClient) Put(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	if m.putFunc != nil {
		return m.putFunc(ctx, url, body)
	}
	return nil, nil
}

func (m *mockHTTPClient) Delete(ctx context.Context, url string) (interfaces.Response, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockCredentialStore is a mock implementation of the CredentialStore interface
type mockCredentialStore struct {
	token      string
	getErr     error
	setCalls   []string
	clearCalls int
}

func (m *mockCredentialStore) Set(ctx context.Context, token string) error {
	m.token = token
	m.setCalls = append(m.setCalls, token)
	return nil
}

func (m *mockCredentialStore) Get(ctx context.Context) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	if m.token == "" {
		return "", interfaces.ErrNoCredential
	}
	return m.token, nil
}

func (m *mockCredentialStore) Clear(ctx context.Context) error {
	m.token = ""
	m.clearCalls++
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
