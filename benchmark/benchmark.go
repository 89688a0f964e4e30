// Package benchmark measures how long a Koyeb deployment takes to
// become publicly usable: create an app, deploy a web service from a
// public docker image, then time each lifecycle phase until the app's
// public URL answers HTTP 200.
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/nicoche/measurements-koyeb/api"
	"github.com/nicoche/measurements-koyeb/helper"
)

const (
	defaultStatusPollInterval = 100 * time.Millisecond
	defaultCleanupWait        = 2 * time.Second
)

type Config struct {
	AppName     string
	ServiceName string
	Region      string
	Image       string
	Port        int

	// StatusPollInterval is the pause between instance status polls.
	StatusPollInterval time.Duration
	// CleanupWait is the drain pause between service and app deletion.
	CleanupWait time.Duration
}

func (c Config) withDefaults() Config {
	if c.AppName == "" {
		c.AppName = "nginx-benchmark-app"
	}
	if c.ServiceName == "" {
		c.ServiceName = "nginx-service"
	}
	if c.Region == "" {
		c.Region = "fra"
	}
	if c.Image == "" {
		c.Image = "nginx:latest"
	}
	if c.Port == 0 {
		c.Port = 80
	}
	if c.StatusPollInterval == 0 {
		c.StatusPollInterval = defaultStatusPollInterval
	}
	if c.CleanupWait == 0 {
		c.CleanupWait = defaultCleanupWait
	}
	return c
}

// Runner executes benchmark cycles against the Koyeb API.
type Runner struct {
	client  *resty.Client
	prober  *Prober
	tracker *TimingTracker
	config  Config
	logger  *zap.SugaredLogger
}

func NewRunner(client *resty.Client, prober *Prober, tracker *TimingTracker, config Config) *Runner {
	if prober == nil {
		prober = NewProber(nil)
	}
	if tracker == nil {
		tracker = NewTimingTracker(nil)
	}

	return &Runner{
		client:  client,
		prober:  prober,
		tracker: tracker,
		config:  config.withDefaults(),
		logger:  helper.GetSugarLogger([]string{"benchmark"}),
	}
}

func (r *Runner) Tracker() *TimingTracker {
	return r.tracker
}

// Run executes one full benchmark cycle. On failure the returned Result
// carries whatever ids were created so far, so the caller can still
// clean up.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	result := &Result{
		AppName:     r.config.AppName,
		ServiceName: r.config.ServiceName,
		Region:      r.config.Region,
		Image:       r.config.Image,
		StartedAt:   time.Now(),
	}

	r.logger.Infof("starting benchmark for %s in region %s", r.config.Image, r.config.Region)

	app, err := api.NewApp(r.client, r.config.AppName)
	if errors.Is(err, api.ErrAppExists) {
		return result, fmt.Errorf(
			"app %q already exists, delete it first (measurements-koyeb cleanup) or pick another name: %w",
			r.config.AppName, err)
	}
	if err != nil {
		return result, fmt.Errorf("creating app: %w", err)
	}
	result.AppId = app.Id

	publicURL, err := app.PublicURL()
	if err != nil {
		return result, err
	}
	result.PublicURL = publicURL
	r.logger.Infof("target URL: %s", publicURL)

	definition := &api.DeploymentDefinition{
		Name:    r.config.ServiceName,
		Type:    "WEB",
		Regions: []string{r.config.Region},
		Docker:  &api.DockerSource{Image: r.config.Image},
		Ports:   []api.DeploymentPort{{Port: r.config.Port, Protocol: "http"}},
		Routes:  []api.DeploymentRoute{{Path: "/", Port: r.config.Port}},
	}

	creationStart := time.Now()
	service, err := api.NewService(r.client, &api.CreateService{
		AppId:      app.Id,
		Definition: definition,
	})
	if err != nil {
		return result, fmt.Errorf("creating service: %w", err)
	}
	creationEnd := time.Now()
	creation := creationEnd.Sub(creationStart)

	result.ServiceId = service.Id
	result.CreationSeconds = creation.Seconds()
	r.tracker.Record("service creation", "setup", creation)
	r.logger.Infof("service %s created in %.2fs", service.Id, creation.Seconds())

	_, created, err := r.waitInstance(ctx, service.Id, anyInstance)
	if err != nil {
		return result, fmt.Errorf("waiting for instance creation: %w", err)
	}
	r.tracker.Record("instance creation", "setup", created)

	status, allocated, err := r.waitInstance(ctx, service.Id, instanceActive)
	if err != nil {
		return result, fmt.Errorf("waiting for instance allocation: %w", err)
	}
	r.tracker.Record("instance allocation", "setup", allocated)
	result.AllocatingSeconds = time.Since(creationEnd).Seconds()
	r.logger.Infof("instance found in state %s, time to allocating %.2fs", status, result.AllocatingSeconds)

	_, starting, err := r.waitInstance(ctx, service.Id, instanceStarted)
	if err != nil {
		return result, fmt.Errorf("waiting for instance start: %w", err)
	}
	r.tracker.Record("instance starting", "setup", starting)

	ready, err := r.prober.WaitReady(ctx, publicURL)
	if err != nil {
		return result, fmt.Errorf("waiting for %s to answer: %w", publicURL, err)
	}
	r.tracker.Record("public readiness", "monitoring", ready)
	result.ReadySeconds = time.Since(creationEnd).Seconds()
	r.logger.Infof("app is responsive, total time to live %.2fs", result.ReadySeconds)

	result.Operations = r.tracker.Operations()

	return result, nil
}

// Cleanup deletes the benchmark service, waits for it to drain, then
// deletes the app. App deletion right after the service teardown can be
// refused by the API; the caller then removes the app manually.
func (r *Runner) Cleanup(ctx context.Context, result *Result) error {
	start := time.Now()
	defer func() {
		r.tracker.Record("cleanup", "cleanup", time.Since(start))
	}()

	if result.ServiceId != "" {
		if err := api.DeleteService(r.client, result.ServiceId); err != nil {
			return fmt.Errorf("deleting service %s: %w", result.ServiceId, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.config.CleanupWait):
		}
	}

	if result.AppId != "" {
		if err := api.DeleteApp(r.client, result.AppId); err != nil {
			return fmt.Errorf("deleting app %s: %w", result.AppId, err)
		}
	}

	return nil
}

func (r *Runner) waitInstance(ctx context.Context, serviceId string, accept func(string) bool) (string, time.Duration, error) {
	start := time.Now()

	for {
		instances, err := api.ListInstances(r.client, serviceId, 1)
		if err != nil {
			return "", 0, err
		}

		if len(instances) > 0 {
			status := strings.ToUpper(instances[0].Status)
			if accept(status) {
				return status, time.Since(start), nil
			}
		}

		select {
		case <-ctx.Done():
			return "", 0, ctx.Err()
		case <-time.After(r.config.StatusPollInterval):
		}
	}
}

func anyInstance(string) bool {
	return true
}

func instanceActive(status string) bool {
	switch status {
	case api.InstanceAllocating, api.InstanceStarting, api.InstanceHealthy:
		return true
	}
	return false
}

func instanceStarted(status string) bool {
	return status == api.InstanceStarting || status == api.InstanceHealthy
}
