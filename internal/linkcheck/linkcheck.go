// Package linkcheck verifies the internal consistency of a written
// catalog tree: every relative hyperlink and asset href must resolve
// to an existing file, and every rel token must be a known vocabulary
// value.
package linkcheck

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/orbitalworks/stac/pkg/vocab"
)

// Problem is one finding against a document.
type Problem struct {
	File   string // document the reference appears in, relative to the root
	Href   string
	Rel    string
	Reason string
}

func (p Problem) String() string {
	if p.Href == "" {
		return fmt.Sprintf("%s: %s", p.File, p.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", p.File, p.Href, p.Reason)
}

// Report summarizes one check run. An empty Problems slice means the
// tree is internally consistent.
type Report struct {
	Documents int
	Links     int
	Skipped   []string // scheme-qualified hrefs left unverified
	Problems  []Problem
}

// Check walks every *.json document under dir and verifies its links
// and asset hrefs.
func Check(dir string) (*Report, error) {
	linksExpr, err := jp.ParseString("$.links[*]")
	if err != nil {
		return nil, fmt.Errorf("links selector: %w", err)
	}
	assetsExpr, err := jp.ParseString("$.assets.*.href")
	if err != nil {
		return nil, fmt.Errorf("assets selector: %w", err)
	}

	report := &Report{}
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		report.Documents++

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		doc, err := oj.Parse(data)
		if err != nil {
			report.Problems = append(report.Problems, Problem{
				File:   rel,
				Reason: fmt.Sprintf("invalid JSON: %v", err),
			})
			return nil
		}

		checkDocument(report, rel, filepath.Dir(path), linksExpr, assetsExpr, doc)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("check %q: %w", dir, walkErr)
	}
	return report, nil
}

func checkDocument(report *Report, file, docDir string, linksExpr, assetsExpr jp.Expr, doc any) {
	for _, raw := range linksExpr.Get(doc) {
		link, ok := raw.(map[string]any)
		if !ok {
			report.Problems = append(report.Problems, Problem{
				File:   file,
				Reason: "link entry is not an object",
			})
			continue
		}
		href, _ := link["href"].(string)
		relToken, _ := link["rel"].(string)
		report.Links++

		if _, err := vocab.LookupRelKind(relToken); err != nil {
			report.Problems = append(report.Problems, Problem{
				File:   file,
				Href:   href,
				Rel:    relToken,
				Reason: fmt.Sprintf("unknown rel %q", relToken),
			})
		}
		checkHref(report, file, docDir, href)
	}

	for _, raw := range assetsExpr.Get(doc) {
		href, ok := raw.(string)
		if !ok {
			report.Problems = append(report.Problems, Problem{
				File:   file,
				Reason: "asset href is not a string",
			})
			continue
		}
		report.Links++
		checkHref(report, file, docDir, href)
	}
}

// checkHref verifies one reference. Scheme-qualified targets are out
// of scope and recorded as skipped.
func checkHref(report *Report, file, docDir, href string) {
	if href == "" {
		report.Problems = append(report.Problems, Problem{
			File:   file,
			Reason: "empty href",
		})
		return
	}
	if strings.Contains(href, "://") {
		report.Skipped = append(report.Skipped, href)
		return
	}

	target := filepath.Join(docDir, filepath.FromSlash(href))
	if _, err := os.Stat(target); err != nil {
		report.Problems = append(report.Problems, Problem{
			File:   file,
			Href:   href,
			Reason: "target does not exist",
		})
	}
}
