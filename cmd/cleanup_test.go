package cmd

import (
	"net/http"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
)

func registerCleanupResponders(t *testing.T) {
	t.Helper()

	httpmock.RegisterResponder("GET", `=~/v1/apps`,
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"apps": []map[string]interface{}{
					{"id": "app-1", "name": "nginx-benchmark-app"},
				},
			})
		},
	)

	httpmock.RegisterResponder("GET", `=~/v1/services`,
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"services": []map[string]interface{}{
					{"id": "svc-1", "app_id": "app-1"},
				},
			})
		},
	)

	httpmock.RegisterResponder("DELETE", "/v1/services/svc-1",
		httpmock.NewStringResponder(204, ""),
	)

	httpmock.RegisterResponder("DELETE", "/v1/apps/app-1",
		httpmock.NewStringResponder(204, ""),
	)
}

func TestCleanupCommand(t *testing.T) {
	client := resty.New()
	client.SetBaseURL("https://app.koyeb.com")

	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()

	registerCleanupResponders(t)

	err := runCleanupCmd(client, "nginx-benchmark-app", strings.NewReader("y\n"))

	assert.Nil(t, err)
	assert.Equal(t, 4, httpmock.GetTotalCallCount())
}

func TestCleanupCommandAborted(t *testing.T) {
	client := resty.New()
	client.SetBaseURL("https://app.koyeb.com")

	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()

	registerCleanupResponders(t)

	err := runCleanupCmd(client, "nginx-benchmark-app", strings.NewReader("n\n"))

	assert.Nil(t, err)
	// only the app lookup, nothing deleted
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestCleanupCommandAppNotFound(t *testing.T) {
	client := resty.New()
	client.SetBaseURL("https://app.koyeb.com")

	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", `=~/v1/apps`,
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"apps": []map[string]interface{}{},
			})
		},
	)

	err := runCleanupCmd(client, "nginx-benchmark-app", strings.NewReader("y\n"))

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "nginx-benchmark-app")
}
