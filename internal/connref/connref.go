// Package connref parses the compact connection shorthand used in pin
// definitions, such as "uart[1].rx" or "gpio[0].ios[4]". An omitted instance
// means instance 0. A bit index is only accepted on the "ios" signal.
package connref

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/specialistvlad/pinmuxgen/internal/model"
)

var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[\[\].]`},
})

// reference is the parsed form of one shorthand connection.
type reference struct {
	Block    string `parser:"@Ident"`
	Instance *int   `parser:"( '[' @Int ']' )?"`
	Signal   string `parser:"'.' @Ident"`
	Index    *int   `parser:"( '[' @Int ']' )?"`
}

var parser = participle.MustBuild[reference](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// Parse converts a shorthand reference into a connection.
func Parse(s string) (model.Connection, error) {
	ref, err := parser.ParseString("", s)
	if err != nil {
		return model.Connection{}, fmt.Errorf("invalid connection %q: %w", s, err)
	}

	conn := model.Connection{Block: ref.Block}
	if ref.Instance != nil {
		conn.Instance = *ref.Instance
	}

	switch {
	case ref.Index == nil:
		conn.Ref = model.ByName(ref.Signal)
	case ref.Signal == model.IOsSignal:
		conn.Ref = model.ByIndex(*ref.Index)
	default:
		return model.Connection{}, fmt.Errorf("invalid connection %q: bit index is only allowed on %q", s, model.IOsSignal)
	}
	return conn, nil
}

// ParseAll parses every reference in order, stopping at the first error.
func ParseAll(refs []string) ([]model.Connection, error) {
	conns := make([]model.Connection, 0, len(refs))
	for _, s := range refs {
		conn, err := Parse(s)
		if err != nil {
			return nil, err
		}
		conns = append(conns, conn)
	}
	return conns, nil
}
