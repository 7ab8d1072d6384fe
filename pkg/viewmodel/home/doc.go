// Package home holds the view-models backing the home controller pages.
//
// View-models are plain data built once per request and handed to a
// renderer. They expose read-only accessors; slices returned to callers are
// copies, so a template or handler cannot alter what the next reader sees.
package home
