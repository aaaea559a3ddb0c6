// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errHTTPNotConfigured is returned by NewServer when there is no HTTP
// handler or listen address to serve the CMS API on.
var errHTTPNotConfigured = errors.New("cms http server is not configured: handler or address missing")
