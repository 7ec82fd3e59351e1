package webui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"trivia/internal/quiz"
)

//go:embed assets/*
var embeddedAssets embed.FS

// embeddedAssetsFS returns the file system rooted at the embedded assets directory.
func embeddedAssetsFS() (fs.FS, error) {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return nil, fmt.Errorf("webui: open embedded assets: %w", err)
	}
	return sub, nil
}

// parsePage loads the page template from the embedded assets.
func parsePage() (*template.Template, error) {
	page, err := template.New("page.html.tmpl").Funcs(template.FuncMap{
		"plain": quiz.PlainText,
		"inc":   func(i int) int { return i + 1 },
	}).ParseFS(embeddedAssets, "assets/page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("webui: parse page template: %w", err)
	}
	return page, nil
}
