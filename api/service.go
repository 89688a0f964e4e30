package api

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

type DockerSource struct {
	Image string `json:"image"`
}

type DeploymentPort struct {
	Port     int    `json:"port"`
	Protocol string `json:"protocol"`
}

type DeploymentRoute struct {
	Path string `json:"path"`
	Port int    `json:"port"`
}

type DeploymentDefinition struct {
	Name    string            `json:"name"`
	Type    string            `json:"type"`
	Regions []string          `json:"regions"`
	Docker  *DockerSource     `json:"docker"`
	Ports   []DeploymentPort  `json:"ports"`
	Routes  []DeploymentRoute `json:"routes"`
}

type CreateService struct {
	AppId      string                `json:"app_id"`
	Definition *DeploymentDefinition `json:"definition"`
}

type Service struct {
	Id     string `json:"id,omitempty"`
	AppId  string `json:"app_id,omitempty"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status,omitempty"`
}

type serviceReply struct {
	Service *Service `json:"service"`
}

type servicesReply struct {
	Services []*Service `json:"services"`
}

func NewService(client *resty.Client, create *CreateService) (*Service, error) {
	resp, err := client.R().
		SetBody(create).
		SetResult(&serviceReply{}).
		Post("/v1/services")

	if err != nil {
		return nil, err
	}

	if resp.StatusCode() == http.StatusOK || resp.StatusCode() == http.StatusCreated {
		return resp.Result().(*serviceReply).Service, nil
	}

	return nil, fmt.Errorf("%s", resp.Body())
}

func ListServices(client *resty.Client, appId string) ([]*Service, error) {
	resp, err := client.R().
		SetQueryParam("app_id", appId).
		SetResult(&servicesReply{}).
		Get("/v1/services")

	if err != nil {
		return nil, err
	}

	if http.StatusOK == resp.StatusCode() {
		return resp.Result().(*servicesReply).Services, nil
	}

	return nil, fmt.Errorf("%s", resp.Body())
}

func DeleteService(client *resty.Client, id string) error {
	resp, err := client.R().Delete("/v1/services/" + id)
	if err != nil {
		return err
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return fmt.Errorf("%s", resp.Body())
	}

	return nil
}
