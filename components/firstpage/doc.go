// Package firstpage serves the first page and its items over net/http.
//
// The page handler renders a fresh home.FirstPageViewModel per request
// through a render.Registry; the items handler returns the same labels as
// JSON. Both respond to GET and HEAD only and share an optional Guard.
package firstpage
