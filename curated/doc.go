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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The pattern should be stored as an exported const string,
// suitably named and commented. For example:
//
//	const InvalidOctal = "invalid octal value: %s"
//
//	e := curated.Errorf(InvalidOctal, "789")
//
//	if curated.Is(e, InvalidOctal) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("console: %v", e)
//
//	if curated.Has(f, InvalidOctal) {
//		fmt.Println("true")
//	}
//
// In this example Is(f, InvalidOctal) is false because f was created with the
// pattern "console: %v".
//
// Any error values in the placeholder list are returned by Unwrap(), so
// errors.Is() and errors.As() from the standard library see through curated
// errors in the usual way. Is() and Has() also see through errors that have
// been wrapped with fmt.Errorf() and the %w verb.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. This alleviates the problem of when and how to
// wrap errors. For example:
//
//	return curated.Errorf("machine: %v", curated.Errorf("machine: %v", err))
//
// will print as "machine: <err>" and not "machine: machine: <err>".
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
package curated
