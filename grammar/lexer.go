package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var DNFLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Single-letter variables only
		{"Letter", `[a-z]`, nil},

		// Negation prefix
		{"Bang", `!`, nil},

		// Term separator
		{"Plus", `\+`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
