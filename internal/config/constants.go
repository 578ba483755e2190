package config

// SourceFileExt is appended to file arguments given without an extension.
const SourceFileExt = ".cat"

// Built-in type names
const (
	NumTypeName  = "Num"
	BoolTypeName = "Bool"
)

// FunctionTagName is the constant that marks a 3-element type array as a
// function type: [input, ->, output].
const FunctionTagName = "->"

// RecursiveMarkerPrefix prefixes the constant that stands for a
// self-referential type discovered during resolution ("Rec$2" means the
// cycle closes two expansion levels up).
const RecursiveMarkerPrefix = "Rec$"

// VarMarkerChar introduces a type variable in signatures: 'a, 'S, ...
const VarMarkerChar = '\''

// Built-in word names the evaluator implements natively.
const (
	DupWordName     = "dup"
	PopWordName     = "pop"
	SwapWordName    = "swap"
	ApplyWordName   = "apply"
	QuoteWordName   = "quote"
	ComposeWordName = "compose"
	IfWordName      = "if"
)
