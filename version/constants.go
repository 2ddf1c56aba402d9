// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

const Client = "binormal"

// Current describes this build.
var Current = &Application{
	Name:  Client,
	Major: 1,
	Minor: 0,
	Patch: 0,
}
