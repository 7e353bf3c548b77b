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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions are equivalent but stop the test with
// t.Fatalf(). Demand functions should be used when the value being tested is
// required by later parts of the test, for example the length of a slice that
// is about to be iterated over.
//
// ExpectSuccess() and ExpectFailure() test for success under generic
// conditions. The documentation for those functions describe the currently
// supported types. Note that nil is considered a success, because of how
// errors usually work.
//
// Tests of concurrent code will often need to check that something happens
// within a bounded time, or that it does not happen at all for a while. The
// ExpectWithin() and ExpectBlocked() functions serve those needs.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. It is safe to write to from one goroutine and inspect from
// another.
package test
