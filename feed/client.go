// Copyright 2025 gdeltPyR Authors

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package feed

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
)

// NewHTTPClient creates an HTTP client routing requests through the given
// per-protocol proxies, e.g. {"http": "http://10.10.1.10:3128"}. Protocols
// without an entry connect directly. An empty map yields the default client.
func NewHTTPClient(proxies map[string]string) (*http.Client, error) {
	if len(proxies) == 0 {
		return http.DefaultClient, nil
	}
	byScheme := make(map[string]*url.URL, len(proxies))
	for scheme, addr := range proxies {
		u, err := url.Parse(addr)
		if err != nil {
			return nil, errors.Annotate(err, "malformed proxy address '%s'", addr)
		}
		byScheme[scheme] = u
	}
	transport := &http.Transport{
		Proxy: func(req *http.Request) (*url.URL, error) {
			return byScheme[req.URL.Scheme], nil
		},
	}
	return &http.Client{Transport: transport}, nil
}

// UseProxies injects a proxy-configured HTTP client into the context; every
// fetch in the query then goes through it uniformly.
func UseProxies(ctx context.Context, proxies map[string]string) (context.Context, error) {
	client, err := NewHTTPClient(proxies)
	if err != nil {
		return nil, errors.Annotate(err, "failed to configure proxies")
	}
	return fetch.UseClient(ctx, client), nil
}
