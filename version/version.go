// This file is part of Frontpanel.
//
// Frontpanel is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Frontpanel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Frontpanel.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the program. The version number is
// set by the linker when building a release. Otherwise the version is taken
// from the VCS information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Frontpanel"

// if number is empty then the project was probably not built with a release
// number. set with:
//
//	go build -ldflags "-X github.com/jetsetilly/frontpanel/version.number=v1.0.0"
var number string

// the vcs revision. suffixed with "+dirty" if the source has been modified
// but not committed
var revision string

// the current version number of the project. "unreleased" if there is vcs
// information but no version number. "local" if there is neither, which
// happens when running with "go run ."
var version string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version. if release is true then the revision information
// should be used sparingly.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Summary is a single line description of the application and its version.
func Summary() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s (%s)", ApplicationName, v, runtime.Version())
	}
	return fmt.Sprintf("%s %s [%s] (%s)", ApplicationName, v, r, runtime.Version())
}

func init() {
	info, ok := debug.ReadBuildInfo()
	version, revision = fromBuildInfo(number, info, ok)
}

// fromBuildInfo returns the version and revision strings for the build
// settings.
func fromBuildInfo(number string, info *debug.BuildInfo, ok bool) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if ok && info != nil {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
