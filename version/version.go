// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "fmt"

// Application describes a released binary.
type Application struct {
	Name  string
	Major int
	Minor int
	Patch int
}

func (a *Application) String() string {
	return fmt.Sprintf("%s/%d.%d.%d", a.Name, a.Major, a.Minor, a.Patch)
}
