package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// ErrAppExists is returned when the Koyeb API refuses an app creation
// because the name is already taken. The caller decides whether that is
// fatal; the benchmark treats it as "delete the leftover app first".
var ErrAppExists = errors.New("app already exists")

type App struct {
	Id        string   `json:"id,omitempty"`
	Name      string   `json:"name"`
	Domains   []Domain `json:"domains,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
}

type Domain struct {
	Id   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type CreateApp struct {
	Name string `json:"name"`
}

type appReply struct {
	App *App `json:"app"`
}

type appsReply struct {
	Apps []*App `json:"apps"`
}

func NewApp(client *resty.Client, name string) (*App, error) {
	resp, err := client.R().
		SetBody(&CreateApp{Name: name}).
		SetResult(&appReply{}).
		Post("/v1/apps")

	if err != nil {
		return nil, err
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated:
		return resp.Result().(*appReply).App, nil
	case http.StatusBadRequest, http.StatusConflict:
		if strings.Contains(strings.ToLower(string(resp.Body())), "already exists") ||
			resp.StatusCode() == http.StatusConflict {
			return nil, ErrAppExists
		}
	}

	return nil, fmt.Errorf("%s", resp.Body())
}

func GetApp(client *resty.Client, id string) (*App, error) {
	resp, err := client.R().
		SetResult(&appReply{}).
		Get("/v1/apps/" + id)

	if err != nil {
		return nil, err
	}

	if http.StatusNotFound == resp.StatusCode() {
		return nil, fmt.Errorf("%s", "App not found")
	}

	if http.StatusOK == resp.StatusCode() {
		return resp.Result().(*appReply).App, nil
	}

	return nil, fmt.Errorf("%s", resp.Body())
}

// ListApps filters apps by exact name. An empty name lists everything.
func ListApps(client *resty.Client, name string) ([]*App, error) {
	req := client.R().SetResult(&appsReply{})
	if name != "" {
		req.SetQueryParam("name", name)
	}

	resp, err := req.Get("/v1/apps")
	if err != nil {
		return nil, err
	}

	if http.StatusOK == resp.StatusCode() {
		return resp.Result().(*appsReply).Apps, nil
	}

	return nil, fmt.Errorf("%s", resp.Body())
}

func DeleteApp(client *resty.Client, id string) error {
	resp, err := client.R().Delete("/v1/apps/" + id)
	if err != nil {
		return err
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return fmt.Errorf("%s", resp.Body())
	}

	return nil
}

// PublicURL builds the https URL of the app's first public domain.
func (a *App) PublicURL() (string, error) {
	if len(a.Domains) == 0 {
		return "", fmt.Errorf("app %s has no public domain", a.Name)
	}
	return "https://" + a.Domains[0].Name, nil
}
