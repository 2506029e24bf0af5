// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoReplayer is returned by NewHandlers when there is nothing to serve.
var errNoReplayer = errors.New("no replayer to serve")
