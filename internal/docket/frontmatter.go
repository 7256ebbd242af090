package docket

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/docketfold/docketfold/internal/errors"
)

// indexFile is the content page consulted for a case's front matter.
const indexFile = "index.md"

// LoadMetadata reads the optional content page at
// <contentRoot>/<slug>/index.md. A missing page yields zero Metadata and no
// error; an unreadable or unparsable page yields zero Metadata and a
// METADATA_INVALID error the caller may log and ignore.
func LoadMetadata(contentRoot, slug string) (Metadata, error) {
	path := filepath.Join(contentRoot, slug, indexFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Metadata{}, nil
		}
		return Metadata{}, errors.NewMetadataInvalid(path, err)
	}

	front, body, ok := splitFrontMatter(string(data))
	meta := Metadata{}
	if ok {
		if err := yaml.Unmarshal([]byte(front), &meta); err != nil {
			return Metadata{}, errors.NewMetadataInvalid(path, err)
		}
	}
	meta.Body = body
	return meta, nil
}

// splitFrontMatter separates a leading "---" delimited YAML block from the
// markdown body. Content without front matter is returned entirely as body.
func splitFrontMatter(content string) (front, body string, ok bool) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, "---\n") {
		return "", normalized, false
	}
	rest := normalized[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", normalized, false
	}
	front = rest[:end]
	body = rest[end+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")
	return front, body, true
}

// Summarize returns the narrative summary for a case: the summary field,
// then the overview field, then the first paragraph of the markdown body.
// Empty when none are available.
func (m Metadata) Summarize() string {
	if s := strings.TrimSpace(m.Summary); s != "" {
		return s
	}
	if s := strings.TrimSpace(m.Overview); s != "" {
		return s
	}
	return firstParagraph(m.Body)
}

// firstParagraph extracts the text of the first paragraph node in body.
func firstParagraph(body string) string {
	src := []byte(body)
	doc := goldmark.New().Parser().Parse(gmtext.NewReader(src))

	var para string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		p, isPara := n.(*ast.Paragraph)
		if !isPara {
			return ast.WalkContinue, nil
		}
		var sb strings.Builder
		for c := p.FirstChild(); c != nil; c = c.NextSibling() {
			t, isText := c.(*ast.Text)
			if !isText {
				continue
			}
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		}
		para = strings.TrimSpace(sb.String())
		if para != "" {
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return para
}
