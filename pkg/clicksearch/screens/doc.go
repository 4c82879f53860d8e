// Package screens holds the state behind the two screens, independent of how
// they are drawn.
//
// ListController owns the search query and the filtered view of the names.
// Frontends feed it text-change and item-click events and subscribe to its
// snapshots. DetailController turns a detail route into the text to show.
//
// Everything here runs on the UI event loop; nothing is safe for concurrent use.
package screens
