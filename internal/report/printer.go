// Package report renders the necklace demonstration as text.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/guttosm/pearl-necklace/internal/domain/model"
	"github.com/guttosm/pearl-necklace/internal/i18n"
)

var colorPrimary = lipgloss.Color("#7C3AED")

// Printer writes report lines to w. Headings are styled for terminals and
// emitted as plain text otherwise. The first write error is kept and every
// later call becomes a no-op; check it with Err.
type Printer struct {
	w          io.Writer
	locale     string
	translator *i18n.Translator
	heading    lipgloss.Style
	err        error
}

// NewPrinter creates a Printer for the given locale.
func NewPrinter(w io.Writer, locale string) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:          w,
		locale:     i18n.NormalizeLocale(locale),
		translator: i18n.GetTranslator(),
		heading:    r.NewStyle().Bold(true).Foreground(colorPrimary),
	}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

// Generating announces that a necklace is being generated.
func (p *Printer) Generating() {
	p.headingLine(i18n.KeyGenerating)
}

// ShapeCount prints the teardrop and round pearl counts.
func (p *Printer) ShapeCount(counts map[model.Shape]int) {
	p.headingLine(i18n.KeyShapeHeading)
	p.line(p.translator.Translatef(i18n.KeyShapeCount, p.locale, counts[model.Teardrop], counts[model.Round]))
}

// Details prints every pearl in necklace order.
func (p *Printer) Details(pearls []model.Pearl) {
	p.headingLine(i18n.KeyDetails)
	p.pearls(pearls)
}

// Sorted prints pearls that are already sorted.
func (p *Printer) Sorted(pearls []model.Pearl) {
	p.headingLine(i18n.KeySorted)
	p.pearls(pearls)
}

// TotalCost prints the necklace total in kr.
func (p *Printer) TotalCost(kr int) {
	p.line(p.translator.Translatef(i18n.KeyTotalCost, p.locale, kr))
}

// SearchResult prints the search target and its outcome.
func (p *Printer) SearchResult(target model.Pearl, index int, found model.Pearl, ok bool) {
	p.line(p.translator.Translatef(i18n.KeySearch, p.locale, target))
	if !ok {
		p.line(p.translator.Translate(i18n.KeyNoMatch, p.locale))
		return
	}
	p.line(p.translator.Translatef(i18n.KeyMatchFound, p.locale, index, found))
}

func (p *Printer) pearls(pearls []model.Pearl) {
	for _, pearl := range pearls {
		p.line(pearl.String())
	}
}

func (p *Printer) headingLine(key string) {
	p.line(p.heading.Render(p.translator.Translate(key, p.locale)))
}

func (p *Printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}
