// Copyright 2024 Romazes

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nasdaqdatalink

import (
	"context"
	"strings"
	"sync"
)

type contextKey int

const (
	clientContextKey contextKey = iota
)

// URL is the default base URL of the server. It may be overwritten in tests
// before resolving any sources.
var URL = "https://data.nasdaq.com/api/v3"

// Client carries the API credential for source resolution. Injecting a Client
// into the context overrides the process-wide auth code registry for that
// call tree.
type Client struct {
	baseURL string // the base URL of the server
	apiKey  string // your very own secret key
}

// newClient creates a new client.
func newClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// UseClient creates a new client based on the API key and injects it into the
// context.
func UseClient(ctx context.Context, apiKey string) context.Context {
	return context.WithValue(ctx, clientContextKey, newClient(URL, apiKey))
}

// authRegistry is the process-wide API credential shared by all adapter
// instances. One process typically talks to one vendor account, so a single
// registry is sufficient; writes happen at configuration time, reads are
// lock-protected and cheap.
type authRegistry struct {
	mu   sync.RWMutex
	code string
	set  bool
}

var auth authRegistry

// SetAuthCode registers the shared API credential. A blank or whitespace-only
// code is ignored: it never clears a previously registered credential and
// never marks the registry as configured.
func SetAuthCode(code string) {
	if strings.TrimSpace(code) == "" {
		return
	}
	auth.mu.Lock()
	defer auth.mu.Unlock()
	auth.code = code
	auth.set = true
}

// AuthCode returns the registered credential, or "" when none was set.
func AuthCode() string {
	auth.mu.RLock()
	defer auth.mu.RUnlock()
	return auth.code
}

// IsAuthCodeSet indicates whether a real credential has been registered.
func IsAuthCodeSet() bool {
	auth.mu.RLock()
	defer auth.mu.RUnlock()
	return auth.set
}

// resetAuthCode clears the registry. For use in tests.
func resetAuthCode() {
	auth.mu.Lock()
	defer auth.mu.Unlock()
	auth.code = ""
	auth.set = false
}
