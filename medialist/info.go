package medialist

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

type Info struct {
	Name        string
	Author      string
	Email       string
	Date        string
	Description string
	URL         string
}

func ModuleInfo() Info {
	return Info{
		Name:        "Medialist",
		Author:      "Michael Klier",
		Email:       "chi@chimeric.de",
		Date:        strings.TrimSpace(version),
		Description: "Displays a list of media files linked from the given page or located in the namespace of the page.",
		URL:         "http://dokuwiki.org/plugin:medialist",
	}
}
