package api

import (
	"errors"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public Koyeb API endpoint.
const DefaultBaseURL = "https://app.koyeb.com"

func PlatformClient(baseURL string, token string, verbose bool) (*resty.Client, error) {
	if token == "" {
		return nil, errors.New("API token is not defined, set KOYEB_API_TOKEN or use --token")
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetAuthToken(token)
	client.SetDebug(verbose)

	return client, nil
}
