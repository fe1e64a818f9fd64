/*
Package medialist lists the media files a wiki page links to or that are stored in the
media namespace named after the page.

The package does no parsing, traversal or permission checking of its own. A host supplies
those through the interfaces in host.go and the package only resolves the markup argument to
a Mode, collects and merges the media ids and renders them as a list of links.

Markup:

	{{medialist>@PAGE@}}       media linked from the current page
	{{medialist>@NAMESPACE@}}  media stored in the current page's namespace
	{{medialist>@ALL@}}        both of the above
	{{medialist>some:page}}    media linked from some:page
*/
package medialist
