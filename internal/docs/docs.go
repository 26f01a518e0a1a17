// Package docs embeds the pages behind the built-in topic tree.
package docs

import (
	"embed"
	"io/fs"
)

//go:embed pages/*.md
var pages embed.FS

// FS returns the embedded docs root. Locators look like "pages/faq.md".
func FS() fs.FS {
	return pages
}
