package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"wyweb.site/medialist/html"
	"wyweb.site/medialist/medialist"
	"wyweb.site/medialist/wiki"
)

func check(e error) {
	if e != nil {
		fmt.Fprintln(os.Stderr, "medialist:", e)
		os.Exit(1)
	}
}

func main() {
	configPath := flag.String("config", "wiki.yaml", "wiki configuration file")
	page := flag.String("page", "", "id of the page to render")
	list := flag.String("list", "", "render only the media list for this argument (@PAGE@, @NAMESPACE@, @ALL@ or a page id)")
	css := flag.Bool("css", false, "write the stylesheet for highlighted code and exit")
	showVersion := flag.Bool("version", false, "print module information and exit")
	fragment := flag.Bool("fragment", false, "write the page body without a surrounding document")
	flag.Parse()

	if *showVersion {
		printInfo(os.Stdout, medialist.ModuleInfo())
		return
	}

	w, err := wiki.Open(*configPath)
	check(err)

	if *css {
		check(w.StyleSheet(os.Stdout))
		return
	}
	if *page == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *list != "" {
		fmt.Fprint(os.Stdout, w.RenderMediaList(*list, *page))
		return
	}

	out, err := w.Render(*page)
	check(err)
	if *fragment {
		fmt.Fprint(os.Stdout, out)
		return
	}
	doc, err := buildPage(w, *page, out)
	check(err)
	_, err = doc.WriteTo(os.Stdout)
	check(err)
}

func buildPage(w *wiki.Wiki, id, content string) (bytes.Buffer, error) {
	var style bytes.Buffer
	if err := w.StyleSheet(&style); err != nil {
		return bytes.Buffer{}, err
	}
	body := html.NewHTMLElement("body")
	article := body.AppendNew("article", html.Class("page"))
	article.AppendText(content).NoIndent()
	return html.BuildDocument(body, html.HeadData{
		Title:  w.CleanID(id),
		Styles: []string{style.String()},
	})
}

func printInfo(out io.Writer, info medialist.Info) {
	fmt.Fprintf(out, "%s %s\n", info.Name, info.Date)
	fmt.Fprintf(out, "%s\n", info.Description)
	fmt.Fprintf(out, "by %s <%s>, %s\n", info.Author, info.Email, info.URL)
}
