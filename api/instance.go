package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// Instance statuses as reported by the Koyeb API. The benchmark only
// cares about the early lifecycle; anything past HEALTHY means the
// deployment is already live.
const (
	InstanceAllocating = "ALLOCATING"
	InstanceStarting   = "STARTING"
	InstanceHealthy    = "HEALTHY"
)

type Instance struct {
	Id     string `json:"id,omitempty"`
	Status string `json:"status"`
}

type instancesReply struct {
	Instances []*Instance `json:"instances"`
}

func ListInstances(client *resty.Client, serviceId string, limit int) ([]*Instance, error) {
	req := client.R().
		SetQueryParam("service_id", serviceId).
		SetResult(&instancesReply{})

	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/v1/instances")
	if err != nil {
		return nil, err
	}

	if http.StatusOK == resp.StatusCode() {
		return resp.Result().(*instancesReply).Instances, nil
	}

	return nil, fmt.Errorf("%s", resp.Body())
}
