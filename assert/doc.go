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

// Package assert contains checks that are only active when the program is
// compiled with the "assertions" build tag. For example:
//
//	go test -tags=assertions ./...
//
// Without the tag the checks compile to nothing of consequence and are safe to
// leave in hot paths.
//
// The Owners type records which goroutines are inside a critical section and
// panics on re-entry. A re-entrant call to a sync.RWMutex would otherwise
// deadlock silently, which is much harder to diagnose than a panic with a
// message naming the resource.
package assert
