package domain

import (
	"strings"

	m "cairocov.dev/pkg/cairocov/internal/model"
)

const returnOperation = "return"

// notReliableOperations appear in almost every line. Counting them would
// mark lines as covered far too often, so they are left out.
var notReliableOperations = map[string]struct{}{
	"drop":                        {},
	"enable_ap_tracking":          {},
	"disable_ap_tracking":         {},
	"struct_deconstruct":          {},
	"dup":                         {},
	"enum_init":                   {},
	"struct_construct":            {},
	"store_temp":                  {},
	"return":                      {},
	"rename":                      {},
	"snapshot_take":               {},
	"struct_snapshot_deconstruct": {},
	"const_as_immediate":          {},
	"contract_address_const":      {},
}

// IsReliableOperation reports whether hits of the operation carry coverage signal.
func IsReliableOperation(name string) bool {
	_, unreliable := notReliableOperations[name]
	return !unreliable
}

// SimplifyOperationName drops generic parameters and call arguments,
// e.g. `store_temp<felt252>` becomes `store_temp`.
func SimplifyOperationName(name string) string {
	if i := strings.IndexAny(name, "<("); i >= 0 {
		return name[:i]
	}

	return name
}

// BuildOperationNames maps every statement to its simplified operation name.
// Names come from the decoded program when available and from the backend
// debug map otherwise.
func BuildOperationNames(program *m.Program, debugMap m.DebugMap) map[m.StatementIndex]string {
	if program != nil {
		return operationNamesFromProgram(program)
	}

	names := make(map[m.StatementIndex]string, len(debugMap.Statements))

	for _, statement := range debugMap.Statements {
		if statement.Libfunc == "" {
			continue
		}

		names[statement.Index] = SimplifyOperationName(statement.Libfunc)
	}

	return names
}

func operationNamesFromProgram(program *m.Program) map[m.StatementIndex]string {
	longIDs := make(map[uint64]m.LibfuncLongID, len(program.LibfuncDeclarations))
	for _, declaration := range program.LibfuncDeclarations {
		longIDs[declaration.ID.ID] = declaration.LongID
	}

	names := make(map[m.StatementIndex]string, len(program.Statements))

	for idx, statement := range program.Statements {
		switch {
		case statement.Invocation != nil:
			longID, ok := longIDs[statement.Invocation.LibfuncID.ID]
			if !ok {
				continue
			}

			names[m.StatementIndex(idx)] = SimplifyOperationName(longID.GenericID)
		case statement.Return != nil:
			names[m.StatementIndex(idx)] = returnOperation
		}
	}

	return names
}
