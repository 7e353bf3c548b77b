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

// Package modalflag is a wrapper for the pflag package. It provides a
// convenient method of handling program modes (and sub-modes) and allows
// different flags for each mode.
//
// At it's simplest it can be used as a replacement for the flag package, with
// some differences. Whereas, with pflag.FlagSet you call Parse() with the
// array of strings as the only argument, with modalflag you first NewArgs()
// with the array of arguments and then Parse() with no arguments. For example
// (note that no error handling of the Parse() function is shown here):
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// The reason for his difference is to allow effective parsing of modes and
// sub-modes.
//
// Flags are added with the Add*() functions. Flags follow the GNU style
// supported by pflag, so a boolean flag called "verbose" is specified on the
// command line as --verbose:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// A mode is a special command line argument that when specified, puts the
// program into a different mode of operation. Modes are added with the
// AddSubModes() function. The first mode in the list is the default mode.
//
//	md.AddSubModes("run", "performance", "version")
//
// All sub-mode comparisons are case insensitive and the Mode() function
// returns the mode in upper case.
//
// Flag parsing stops at the first non-flag argument, which is then checked
// against the list of sub-modes. Further calls to NewMode() and Parse() then
// process the flags for the selected mode:
//
//	md.Parse()
//	switch md.Mode() {
//	case "PERFORMANCE":
//		md.NewMode()
//		duration := md.AddDuration("duration", time.Second*5, "run time")
//		p, err := md.Parse()
//		switch p {
//		case ParseError:
//			fmt.Println(err)
//			return
//		case ParseHelp:
//			return
//		}
//		doPerformance(*duration, md.RemainingArgs())
//	}
package modalflag
