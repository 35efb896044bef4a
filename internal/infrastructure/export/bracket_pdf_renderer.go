package export

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"

	"github.com/go-pdf/fpdf"
)

// Page geometry in points; the y axis grows downwards.
const (
	pageMargin       = 18 * 72 / 25.4
	headerHeight     = 78.0
	rosterRowHeight  = 28.0
	pdfMatchHeight   = 58.0
	pdfGap           = 32.0
	baseColumnWidth  = 160.0
	baseColumnGap    = 80.0
	boxCornerRadius  = 10.0
	slotPaddingX     = 14.0
	slotPaddingTop   = 14.0
	footerText       = "Gerado automaticamente pelo painel FKBA"
	emptyEventNotice = "%s - Nenhuma chave gerada até o momento."
)

type rgb struct{ r, g, b int }

var (
	colorBrand       = rgb{31, 71, 133}
	colorWhite       = rgb{255, 255, 255}
	colorInk         = rgb{31, 41, 56}
	colorMuted       = rgb{89, 102, 122}
	colorRosterFill  = rgb{245, 250, 255}
	colorConnector   = rgb{191, 201, 214}
	colorBoxStroke   = rgb{209, 219, 235}
	colorHighlight   = rgb{224, 237, 255}
	colorHighStroke  = rgb{46, 97, 199}
	colorDivider     = rgb{224, 230, 240}
	colorFooter      = rgb{140, 148, 158}
	colorEmptyNotice = rgb{115, 122, 133}
)

// BracketPDFRenderer draws brackets on A4 pages.
type BracketPDFRenderer struct{}

// NewBracketPDFRenderer creates the renderer.
func NewBracketPDFRenderer() *BracketPDFRenderer {
	return &BracketPDFRenderer{}
}

type pdfCanvas struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	width  float64
	height float64
}

func (c *pdfCanvas) fill(col rgb)   { c.pdf.SetFillColor(col.r, col.g, col.b) }
func (c *pdfCanvas) stroke(col rgb) { c.pdf.SetDrawColor(col.r, col.g, col.b) }
func (c *pdfCanvas) ink(col rgb)    { c.pdf.SetTextColor(col.r, col.g, col.b) }

func (c *pdfCanvas) font(style string, size float64) {
	c.pdf.SetFont("Helvetica", style, size)
}

func (c *pdfCanvas) text(x, y float64, s string) {
	c.pdf.Text(x, y, c.tr(s))
}

func (c *pdfCanvas) textRight(right, y float64, s string) {
	s = c.tr(s)
	c.pdf.Text(right-c.pdf.GetStringWidth(s), y, s)
}

// truncate shortens s with an ellipsis until it fits maxWidth in the current font.
func (c *pdfCanvas) truncate(s string, maxWidth float64) string {
	if c.pdf.GetStringWidth(c.tr(s)) <= maxWidth {
		return s
	}
	available := maxWidth - c.pdf.GetStringWidth("...")
	if available <= 0 {
		return "..."
	}
	var b strings.Builder
	for _, r := range s {
		if c.pdf.GetStringWidth(c.tr(b.String()+string(r))) > available {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + "..."
}

// Render draws one page per bracket page, or a notice page when there is none.
func (r *BracketPDFRenderer) Render(event *events.Event, pages []matchmaking.ExportPage) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(event.Title, true)
	pdf.SetCreator("FKBA", true)

	width, height := pdf.GetPageSize()
	c := &pdfCanvas{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), width: width, height: height}

	if len(pages) == 0 {
		pdf.AddPage()
		c.font("B", 16)
		c.ink(colorInk)
		c.text(pageMargin, pageMargin+40, fmt.Sprintf(emptyEventNotice, event.Title))
	}
	for _, page := range pages {
		pdf.AddPage()
		r.drawPage(c, event, page)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *BracketPDFRenderer) drawPage(c *pdfCanvas, event *events.Event, page matchmaking.ExportPage) {
	bracket := page.Bracket
	margin := pageMargin
	innerWidth := c.width - 2*margin

	// Header band
	headerTop := margin
	headerBottom := headerTop + headerHeight
	c.fill(colorBrand)
	c.pdf.RoundedRect(margin, headerTop, innerWidth, headerHeight, boxCornerRadius, "1234", "F")

	c.ink(colorWhite)
	c.font("B", 17)
	c.text(margin+16, headerTop+24, event.Title)
	c.font("", 11)
	c.textRight(c.width-margin-16, headerTop+44, fmt.Sprintf("%d luta(s) selecionada(s)", page.Selected))

	chips := []string{
		bracket.RuleSet.Label(),
		titleCase(bracket.AgeGroup) + " · " + bracket.WeightLabel,
		titleCase(bracket.ExperienceLabel),
		bracket.Sex.Label(),
	}
	c.font("B", 9)
	chipX := margin + 16
	for _, chip := range chips {
		if strings.TrimSpace(chip) == "" {
			continue
		}
		textWidth := c.pdf.GetStringWidth(c.tr(chip))
		chipWidth := textWidth + 28
		c.fill(colorWhite)
		c.pdf.RoundedRect(chipX, headerBottom-32, chipWidth, 18, 6, "1234", "F")
		c.ink(colorBrand)
		c.text(chipX+(chipWidth-textWidth)/2, headerBottom-25, chip)
		chipX += chipWidth + 8
	}

	// Roster of athletes, two columns
	rows := int(math.Max(1, math.Ceil(float64(len(bracket.Entries))/2)))
	rosterHeight := float64(rows)*rosterRowHeight + 36
	rosterTop := headerBottom + 26
	c.fill(colorRosterFill)
	c.pdf.RoundedRect(margin, rosterTop, innerWidth, rosterHeight, boxCornerRadius, "1234", "F")

	c.ink(colorInk)
	c.font("B", 12)
	c.text(margin+16, rosterTop+20, "Atletas nesta chave")

	colWidth := (innerWidth - 32) / 2
	for i, entry := range bracket.Entries {
		x := margin + 16 + float64(i%2)*(colWidth+16)
		y := rosterTop + 40 + float64(i/2)*rosterRowHeight

		c.ink(colorInk)
		c.font("B", 9)
		c.text(x, y, c.truncate(fmt.Sprintf("%d. %s", entry.Slot, athleteName(entry)), colWidth))

		c.ink(colorMuted)
		c.font("", 8)
		c.text(x, y+11, c.truncate(rosterDetail(entry), colWidth))
	}

	// Bracket grid
	gridTop := rosterTop + rosterHeight + 40
	gridHeight := math.Max(margin+140, c.height-gridTop-margin-120)
	r.drawGrid(c, bracket, page.Highlight, margin, gridTop, innerWidth, gridHeight)

	c.ink(colorFooter)
	c.font("I", 9)
	c.textRight(c.width-margin, c.height-margin+6, footerText)
}

type boxPosition struct {
	left, right, centerY float64
}

func (r *BracketPDFRenderer) drawGrid(c *pdfCanvas, bracket *matchmaking.Bracket, highlight map[string]bool, left, top, width, height float64) {
	layout := matchmaking.ComputeLayout(bracket.Matches, bracket.TotalRounds(), pdfMatchHeight, pdfGap)
	if len(layout.Rounds) == 0 {
		c.ink(colorEmptyNotice)
		c.font("", 10)
		c.text(left, top+20, "Nenhuma luta cadastrada para esta chave.")
		return
	}

	n := float64(len(layout.Rounds))
	baseWidth := n*baseColumnWidth + math.Max(n-1, 0)*baseColumnGap
	scale := math.Min(math.Min(1, width/baseWidth), math.Min(1, height/layout.TotalHeight))

	colWidth := baseColumnWidth * scale
	colGap := baseColumnGap * scale
	matchHeight := pdfMatchHeight * scale
	usable := n*colWidth + math.Max(n-1, 0)*colGap
	offsetX := left + (width-usable)/2

	entries := make(map[string]*matchmaking.Entry, len(bracket.Entries))
	for _, e := range bracket.Entries {
		entries[e.ID] = e
	}

	positions := make(map[string]boxPosition, len(bracket.Matches))
	for i, round := range layout.Rounds {
		columnX := offsetX + float64(i)*(colWidth+colGap)
		c.ink(colorInk)
		c.font("B", math.Max(9, 11*scale))
		c.text(columnX, top-12, strings.ToUpper(round.Label))

		for _, placed := range round.Matches {
			boxTop := top + placed.Top*scale
			r.drawBox(c, placed.Match, entries, columnX, boxTop, colWidth, matchHeight, highlight[placed.Match.ID])
			positions[placed.Match.ID] = boxPosition{
				left:    columnX,
				right:   columnX + colWidth,
				centerY: boxTop + matchHeight/2,
			}
		}
	}

	c.stroke(colorConnector)
	c.pdf.SetLineWidth(scale)
	c.pdf.SetLineCapStyle("round")
	for _, match := range bracket.Matches {
		target, ok := positions[match.ID]
		if !ok {
			continue
		}
		for _, source := range []*string{match.BlueSourceMatchID, match.RedSourceMatchID} {
			if source == nil {
				continue
			}
			start, ok := positions[*source]
			if !ok {
				continue
			}
			midX := (start.right + target.left) / 2
			c.pdf.Line(start.right, start.centerY, midX, start.centerY)
			c.pdf.Line(midX, start.centerY, midX, target.centerY)
			c.pdf.Line(midX, target.centerY, target.left, target.centerY)
		}
	}
}

func (r *BracketPDFRenderer) drawBox(c *pdfCanvas, match *matchmaking.Match, entries map[string]*matchmaking.Entry, x, y, width, height float64, highlighted bool) {
	if highlighted {
		c.fill(colorHighlight)
		c.stroke(colorHighStroke)
		c.pdf.SetLineWidth(1.4)
	} else {
		c.fill(colorWhite)
		c.stroke(colorBoxStroke)
		c.pdf.SetLineWidth(1)
	}
	c.pdf.RoundedRect(x, y, width, height, boxCornerRadius, "1234", "FD")

	c.stroke(colorDivider)
	c.pdf.SetLineWidth(0.7)
	c.pdf.Line(x, y+height/2, x+width, y+height/2)

	r.drawSlot(c, lookupEntry(entries, match.BlueEntryID), x, y, width)
	r.drawSlot(c, lookupEntry(entries, match.RedEntryID), x, y+height/2, width)
}

func (r *BracketPDFRenderer) drawSlot(c *pdfCanvas, entry *matchmaking.Entry, x, top, width float64) {
	if entry == nil {
		return
	}
	mainSize, detailSize := 9.0, 7.0
	if width < 130 {
		mainSize, detailSize = 8, 6
	}
	maxWidth := width - 2*slotPaddingX

	name := athleteName(entry)
	baseline := top + slotPaddingTop
	if name != "" {
		c.ink(colorInk)
		c.font("B", mainSize)
		c.text(x+slotPaddingX, baseline, c.truncate(name, maxWidth))
		baseline += 11
	}
	if academy := academyName(entry); academy != "" {
		c.ink(colorMuted)
		c.font("", detailSize)
		c.text(x+slotPaddingX, baseline, c.truncate(academy, maxWidth))
	}
}

func lookupEntry(entries map[string]*matchmaking.Entry, id *string) *matchmaking.Entry {
	if id == nil {
		return nil
	}
	return entries[*id]
}

func athleteName(entry *matchmaking.Entry) string {
	if entry.Registration == nil {
		return ""
	}
	return entry.Registration.AthleteName
}

func academyName(entry *matchmaking.Entry) string {
	if entry.Registration == nil || entry.Registration.Academy == nil {
		return ""
	}
	return entry.Registration.Academy.Name
}

func rosterDetail(entry *matchmaking.Entry) string {
	reg := entry.Registration
	if reg == nil {
		return ""
	}
	academy := "Academia nao informada"
	if reg.Academy != nil {
		academy = reg.Academy.Name
	}
	coach := "Professor nao informado"
	if reg.Coach != nil {
		coach = reg.Coach.FullName
	}
	return fmt.Sprintf("%s · Peso %s kg · %d lutas · %s", academy, reg.WeightKg.StringFixed(2), reg.TotalFights(), coach)
}

// titleCase upper-cases the first letter of every word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
