package scan

import (
	"os"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// DefaultDescription is used when an entry file has no usable <title>.
const DefaultDescription = "Static prototype"

// leadingPrefix matches a "Project - " / "Project – " style prefix that
// repeats the project name in front of the real title.
var leadingPrefix = regexp.MustCompile(`^\S+\s*[-–—]\s*`)

var prototypeWord = regexp.MustCompile(`(?i)\bprototype\b`)

// Describe extracts a short description from the entry file's <title>
// element. Read or parse failures fall back to the default description.
func Describe(entryPath string) string {
	f, err := os.Open(entryPath)
	if err != nil {
		return DefaultDescription
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return DefaultDescription
	}

	title := findTitle(doc)
	return CleanDescription(title)
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		var sb strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
			}
		}
		return sb.String()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

// CleanDescription strips the leading "word - " prefix and the literal word
// "Prototype" from a raw title, falling back to the default when nothing
// remains.
func CleanDescription(title string) string {
	s := strings.TrimSpace(title)
	s = leadingPrefix.ReplaceAllString(s, "")
	s = prototypeWord.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return DefaultDescription
	}
	return s
}
