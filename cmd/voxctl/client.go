package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/voxctl/voxctl/internal/auth"
)

func newClient() *resty.Client {
	c := resty.New().
		SetBaseURL(apiFlag).
		SetHeader("Content-Type", "application/json").
		SetTimeout(60 * time.Second)
	if keyFlag != "" {
		c.SetHeader(auth.PanelKeyHeader, keyFlag)
	}
	return c
}

func printVerdict(resp *resty.Response) error {
	_, _ = fmt.Fprintln(os.Stdout, resp.String())
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("http %d", resp.StatusCode())
	}
	return nil
}

func doGet(path string) error {
	resp, err := newClient().R().Get(path)
	if err != nil {
		return err
	}
	return printVerdict(resp)
}

func doPost(path string, body interface{}) error {
	req := newClient().R()
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Post(path)
	if err != nil {
		return err
	}
	return printVerdict(resp)
}
