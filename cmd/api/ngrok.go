package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokAPIBase       = "http://ngrok:4040"
	ngrokAttempts      = 10
	ngrokRetryInterval = 3 * time.Second
)

var errNoTunnels = errors.New("ngrok has no active tunnels")

type ngrokTunnelsResponse struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// detectNgrokURL asks the local ngrok agent for its public URL, preferring
// HTTPS. ngrok may still be starting, so it polls up to attempts times.
func detectNgrokURL(ctx context.Context, apiBase string, attempts int, interval time.Duration) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		url, err := fetchTunnelURL(ctx, client, apiBase+"/api/tunnels")
		if err == nil {
			return url, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(interval):
		}
	}
	return "", fmt.Errorf("ngrok: %d attempts: %w", attempts, lastErr)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("decode tunnels: %w", err)
	}
	if len(tunnels.Tunnels) == 0 {
		return "", errNoTunnels
	}
	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	return tunnels.Tunnels[0].PublicURL, nil
}
