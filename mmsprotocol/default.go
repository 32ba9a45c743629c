package mmsprotocol

import (
	"os"
	"sync"
)

var (
	defaultMu     sync.Mutex
	defaultClient *Client
)

// Default returns the process-wide client bound to os.Stdin and os.Stdout,
// which is how the simulator connects to a mouse program. It is created on
// first use.
//
// Nothing else in the process may write to os.Stdout while the default
// client is in use; log to os.Stderr instead.
func Default() *Client {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultClient == nil {
		defaultClient = NewClient(os.Stdin, os.Stdout)
	}
	return defaultClient
}

// SetDefault replaces the process-wide client. Passing nil makes the next
// Default call build a fresh stdin/stdout client.
func SetDefault(c *Client) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultClient = c
}
