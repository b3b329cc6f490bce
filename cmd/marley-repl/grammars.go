package main

import "github.com/go-marley/marley"

// builtinGrammar is one of the demo grammars marley-repl can drive. Building
// real grammars from source text is exactly the toy lexer and DSL reducer
// the marley core deliberately leaves out; these are hardcoded instead so
// the CLI has something to demonstrate the library against.
type builtinGrammar struct {
	name  string
	start string
	build func() *marley.Grammar
}

var builtinGrammars = map[string]builtinGrammar{
	"parens": {
		name:  "parens",
		start: "parens",
		build: func() *marley.Grammar {
			return marley.NewGrammar(map[string][]marley.Production{
				"parens": {
					{},
					{
						marley.Terminal(marley.Exactly("(")),
						marley.Nonterminal("parens"),
						marley.Terminal(marley.Exactly(")")),
					},
				},
			})
		},
	},
	"arithmetic": {
		name:  "arithmetic",
		start: "P",
		build: func() *marley.Grammar {
			digit := marley.OneOf(
				marley.Exactly("1"), marley.Exactly("2"), marley.Exactly("3"), marley.Exactly("4"),
			)
			return marley.NewGrammar(map[string][]marley.Production{
				"P": {{marley.Nonterminal("S")}},
				"S": {
					{marley.Nonterminal("S"), marley.Terminal(marley.Exactly("+")), marley.Nonterminal("M")},
					{marley.Nonterminal("M")},
				},
				"M": {
					{marley.Nonterminal("M"), marley.Terminal(marley.Exactly("*")), marley.Nonterminal("T")},
					{marley.Nonterminal("T")},
				},
				"T": {{marley.Terminal(digit)}},
			})
		},
	},
}
