// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no listen address
// is provided in the server configuration, resulting in no transport handlers
// being initialized. This is a fatal misconfiguration and stops startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
