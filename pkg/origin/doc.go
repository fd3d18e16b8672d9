// Package origin describes where in a query a diagnostic originated.
//
// A Context pairs the full query text with the byte range of the offending
// fragment and, when the text came from a stored object such as a view, the
// object's type and name. Its Summary method renders the familiar block shown
// under engine error messages, with the fragment underlined in place.
package origin
