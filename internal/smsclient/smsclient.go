// Package smsclient talks to the SMS gateway's HTTP API: a form-encoded POST
// answered with a JSON result envelope. result_code 1 means accepted.
package smsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Client sends SMS messages through the gateway.
type Client struct {
	baseURL string
	apiKey  string
	userID  string
	sender  string
	httpc   *http.Client
	log     *logrus.Logger
}

// New creates an SMS gateway client. sender is the registered outbound number.
func New(baseURL, apiKey, userID, sender string, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		userID:  userID,
		sender:  sender,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

type sendResult struct {
	ResultCode int    `json:"result_code"`
	Message    string `json:"message"`
	MsgID      string `json:"msg_id,omitempty"`
}

// Send delivers one message to phone. A transport failure, a non-2xx response
// or a gateway result_code other than 1 is an error.
func (c *Client) Send(ctx context.Context, phone, message string) error {
	form := url.Values{
		"key":      {c.apiKey},
		"user_id":  {c.userID},
		"sender":   {c.sender},
		"receiver": {phone},
		"msg":      {message},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send/", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	var result sendResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode sms gateway response: %w", err)
	}
	if result.ResultCode != 1 {
		return fmt.Errorf("sms gateway rejected message: code %d (%s)", result.ResultCode, result.Message)
	}

	c.log.WithFields(logrus.Fields{"receiver": phone, "msg_id": result.MsgID}).Info("SMS delivered to gateway")
	return nil
}
