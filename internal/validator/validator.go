// Package validator checks resolved connectivity tables against an embedded
// CUE contract before they are handed to template rendering. A failure here
// means the resolver produced tables the templates cannot consume.
package validator

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"github.com/specialistvlad/pinmuxgen/internal/tables"
)

//go:embed tables_schema.cue
var tablesSchema []byte

// ValidationError lists every contract violation found in one set of tables.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tables schema validation failed: %s", strings.Join(e.Issues, "; "))
}

// Errors returns each violation as a separate message.
func (e *ValidationError) Errors() []string {
	return e.Issues
}

// Validator validates tables against the compiled CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// New creates a new Validator with the embedded CUE schema.
func New() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(tablesSchema)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling tables schema: %w", schema.Err())
	}

	return &Validator{ctx: ctx, schema: schema}, nil
}

// Validate returns nil if t conforms to the schema, or a *ValidationError.
func (v *Validator) Validate(t *tables.Tables) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshaling tables to JSON: %w", err)
	}
	return v.ValidateJSON(data)
}

// ValidateJSON validates already rendered tables.
func (v *Validator) ValidateJSON(data []byte) error {
	dataValue := v.ctx.CompileBytes(data)
	if dataValue.Err() != nil {
		return fmt.Errorf("compiling tables as CUE: %w", dataValue.Err())
	}

	def := v.schema.LookupPath(cue.ParsePath("#Tables"))
	if def.Err() != nil {
		return fmt.Errorf("looking up #Tables definition: %w", def.Err())
	}

	err := def.Unify(dataValue).Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var issues []string
	for _, e := range errors.Errors(err) {
		issues = append(issues, e.Error())
	}
	return &ValidationError{Issues: issues}
}
