// Package internal contains the SDL plumbing behind the clicksearch screens:
// window and renderer setup, fonts, input mapping, icons, theming and logging.
// Types and functions in this package are not part of the public API.
package internal
