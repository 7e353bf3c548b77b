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

// Package logger is the central log for the application. Log entries are
// made up of a tag and a detail string. The tag should be the name of the
// package or subsystem making the entry.
//
//	logger.Log(logger.Allow, "machine", "halted")
//	logger.Logf(logger.Allow, "console", "unknown command: %s", cmd)
//
// Consecutive entries that are identical are merged into a single entry with
// a repeat count.
//
// The detail argument to Log() can be a string, an error or a fmt.Stringer.
// Any other type is formatted with the %v verb.
//
// The first argument to Log() and Logf() is a Permission. This allows callers
// to pass in a value that decides whether the entry should be made, for
// example a preference value. The Allow value always permits logging.
//
// All functions are safe to call from any goroutine.
package logger
