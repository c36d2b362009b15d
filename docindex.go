// Package docindex provides the navigation index and search core of a
// browsable documentation site. It builds a tree from hierarchical page
// metadata, a search corpus from a page feed, and keeps tree highlighting in
// sync with the current navigation location.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., etree/, goquery/, search/).
package docindex
