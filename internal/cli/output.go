package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/mamdani/internal/presentation/tui"
)

// Printer writes command results either as rendered markdown or as JSON.
type Printer struct {
	Out    io.Writer
	JSON   bool
	render func(string) (string, error)
}

// NewPrinter creates a printer for out. Markdown is styled only when out is a terminal.
func NewPrinter(out io.Writer, asJSON bool) *Printer {
	plain := true
	if f, ok := out.(*os.File); ok {
		plain = !term.IsTerminal(int(f.Fd()))
	}
	return &Printer{Out: out, JSON: asJSON, render: tui.NewRenderer(plain)}
}

// Print writes v as indented JSON or the markdown report.
func (p *Printer) Print(markdown string, v any) error {
	if p.JSON {
		enc := json.NewEncoder(p.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	out, err := p.render(markdown)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(p.Out, out)
	return err
}
