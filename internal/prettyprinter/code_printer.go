package prettyprinter

import (
	"bytes"

	"github.com/funvibe/catena/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// CodePrinter renders a parsed program back as canonical source: runs of
// plain terms wrapped at the line width, each definition in its own block
// with the body indented.
type CodePrinter struct {
	buf       bytes.Buffer
	indent    int
	lineWidth int // max line width (0 = unlimited)
	column    int // current column position
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{lineWidth: 80}
}

func NewCodePrinterWithWidth(width int) *CodePrinter {
	return &CodePrinter{lineWidth: width}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
	p.column = p.indent * 4
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
	p.column += len(s)
}

func (p *CodePrinter) writeln() {
	p.buf.WriteByte('\n')
	p.column = 0
}

// PrintProgram renders the whole program and returns the source text. The
// output always ends with a newline.
func (p *CodePrinter) PrintProgram(program *ast.Program) string {
	var run []ast.Term
	wroteBlock := false

	flush := func() {
		if len(run) == 0 {
			return
		}
		if wroteBlock {
			p.writeln()
		}
		p.writeIndent()
		p.printTermRun(run)
		p.writeln()
		run = nil
		wroteBlock = true
	}

	for _, term := range program.Terms {
		if stmt, ok := term.(*ast.DefineStatement); ok {
			flush()
			if wroteBlock {
				p.writeln()
			}
			p.printDefine(stmt)
			wroteBlock = true
			continue
		}
		run = append(run, term)
	}
	flush()
	return p.String()
}

// printTermRun writes terms separated by single spaces, breaking the line
// when the next term would cross the width limit. Quotations stay inline.
func (p *CodePrinter) printTermRun(terms []ast.Term) {
	for _, term := range terms {
		s := term.String()
		if p.column != p.indent*4 {
			if p.lineWidth > 0 && p.column+1+len(s) > p.lineWidth {
				p.writeln()
				p.writeIndent()
			} else {
				p.write(" ")
			}
		}
		p.write(s)
	}
}

func (p *CodePrinter) printDefine(stmt *ast.DefineStatement) {
	p.writeIndent()
	p.write("define " + stmt.Name + " : " + stmt.Signature.String() + " {")
	p.writeln()

	p.indent++
	p.writeIndent()
	p.printTermRun(stmt.Body)
	p.writeln()
	p.indent--

	p.writeIndent()
	p.write("}")
	p.writeln()
}

// Format renders program with the default line width.
func Format(program *ast.Program) string {
	return NewCodePrinter().PrintProgram(program)
}
