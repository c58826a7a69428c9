package casebook

import "embed"

// builtinCasesFS holds the worked examples from every puzzle description,
// with their inputs.
//
//go:embed cases
var builtinCasesFS embed.FS
