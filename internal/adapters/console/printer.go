// Package console renders the readiness report for a terminal.
//
// Styling is applied through a lipgloss renderer bound to the output
// writer, so pipes and files receive plain text.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentpay/setupcheck/internal/core/domain"
)

const (
	glyphPass = "✅"
	glyphFail = "❌"
	glyphWarn = "⚠️"
)

var nextSteps = []string{
	"1. Run: npm run dev",
	"2. Visit: http://localhost:3000",
	"3. Test payment flow with small amount",
}

type styles struct {
	heading lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
	warn    lipgloss.Style
	key     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading: r.NewStyle().Bold(true),
		pass:    r.NewStyle().Foreground(lipgloss.Color("2")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		key:     r.NewStyle().Bold(true),
	}
}

// Printer implements domain.ReportPrinter.
type Printer struct {
	product string
}

// NewPrinter returns a printer whose header names product.
func NewPrinter(product string) *Printer {
	if product == "" {
		product = "AgentPay"
	}
	return &Printer{product: product}
}

func (p *Printer) Header(w io.Writer) {
	st := newStyles(lipgloss.NewRenderer(w))
	fmt.Fprintf(w, "🔍 %s\n\n", st.heading.Render(fmt.Sprintf("Validating %s Setup...", p.product)))
}

func (p *Printer) FileNotFound(w io.Writer, name string) {
	st := newStyles(lipgloss.NewRenderer(w))
	fmt.Fprintf(w, "%s %s\n", glyphFail, st.fail.Render(name+" file not found!"))
}

func (p *Printer) FileUnreadable(w io.Writer, name string, err error) {
	st := newStyles(lipgloss.NewRenderer(w))
	fmt.Fprintf(w, "%s %s\n", glyphFail, st.fail.Render(fmt.Sprintf("%s could not be read: %v", name, err)))
}

func (p *Printer) Report(w io.Writer, r *domain.Report) {
	st := newStyles(lipgloss.NewRenderer(w))

	fmt.Fprintf(w, "📋 %s\n", st.heading.Render("REQUIRED CONFIGURATION:"))
	for _, res := range r.Required {
		glyph := glyphPass
		if !res.OK {
			glyph = glyphFail
		}
		p.line(w, st, glyph, res)
	}

	fmt.Fprintf(w, "\n📋 %s\n", st.heading.Render("OPTIONAL CONFIGURATION:"))
	for _, res := range r.Optional {
		glyph := glyphPass
		if !res.OK {
			glyph = glyphWarn
		}
		p.line(w, st, glyph, res)
	}

	ready := r.Ready()
	status := glyphPass + " READY"
	if !ready {
		status = glyphFail + " INCOMPLETE"
	}
	fmt.Fprintf(w, "\n🎯 %s %s\n", st.heading.Render("SETUP STATUS:"), status)

	if ready {
		fmt.Fprintf(w, "\n🚀 %s\n", st.heading.Render("Next steps:"))
		for _, step := range nextSteps {
			fmt.Fprintln(w, step)
		}
		return
	}
	fmt.Fprintln(w, "\n🔧 Fix required configuration above, then run this script again")
}

func (p *Printer) line(w io.Writer, st styles, glyph string, res domain.Result) {
	msg := res.Message
	switch {
	case res.OK:
		msg = st.pass.Render(msg)
	case res.Group == domain.GroupRequired:
		msg = st.fail.Render(msg)
	default:
		msg = st.warn.Render(msg)
	}
	fmt.Fprintf(w, "  %s %s: %s\n", glyph, st.key.Render(res.Key), msg)
}
