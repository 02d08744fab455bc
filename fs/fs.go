// Package fs builds the flattened notes directory tree, tracks its
// expansion state, and performs the basic file operations the browser
// offers (create, rename, delete).
package fs

// Item is one visible row of the flattened tree.
type Item struct {
	Path     string
	Name     string
	Depth    int
	IsDir    bool
	Expanded bool
}
