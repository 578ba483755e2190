package token

type TokenType string

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT   = "IDENT"   // dup, swap, my-word
	INT     = "INT"     // 42
	TYPEVAR = "TYPEVAR" // 'a (literal holds the bare name)

	// Delimiters
	LBRACKET = "["
	RBRACKET = "]"
	LBRACE   = "{"
	RBRACE   = "}"
	LPAREN   = "("
	RPAREN   = ")"
	COLON    = ":"
	ARROW    = "->"

	// Keywords
	DEFINE = "DEFINE"
	TRUE   = "TRUE"
	FALSE  = "FALSE"
)

var keywords = map[string]TokenType{
	"define": DEFINE,
	"true":   TRUE,
	"false":  FALSE,
}

// LookupIdent checks the keywords table for an identifier.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
