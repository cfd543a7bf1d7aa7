package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TraceEntry is one executed VM step.
type TraceEntry struct {
	PC int `json:"pc"`
	AP int `json:"ap"`
	FP int `json:"fp"`
}

// CasmLevelInfo is the low-level trace of one program execution.
type CasmLevelInfo struct {
	RunWithCallHeader bool         `json:"run_with_call_header"`
	VMTrace           []TraceEntry `json:"vm_trace"`
}

// ExecutionInfo ties a low-level trace to the program artifact it ran.
type ExecutionInfo struct {
	SourceSierraPath Path          `json:"source_sierra_path"`
	CasmLevelInfo    CasmLevelInfo `json:"casm_level_info"`
}

// CallTrace is one call of the recorded call tree.
type CallTrace struct {
	NestedCalls   []CallTraceNode `json:"nested_calls"`
	ExecutionInfo *ExecutionInfo  `json:"cairo_execution_info"`
}

// ExecutionInfos collects the execution infos of the call and all nested
// entry point calls, depth first.
func (c *CallTrace) ExecutionInfos() []ExecutionInfo {
	var infos []ExecutionInfo

	c.collect(&infos)

	return infos
}

func (c *CallTrace) collect(acc *[]ExecutionInfo) {
	if c.ExecutionInfo != nil {
		*acc = append(*acc, *c.ExecutionInfo)
	}

	for _, node := range c.NestedCalls {
		if node.EntryPointCall != nil {
			node.EntryPointCall.collect(acc)
		}
	}
}

// CallTraceNode is either a nested entry point call or a deployment without
// constructor, which carries no trace.
type CallTraceNode struct {
	EntryPointCall *CallTrace
}

// UnmarshalJSON accepts `{"EntryPointCall": {...}}` or a bare variant name.
func (n *CallTraceNode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		n.EntryPointCall = nil
		return nil
	}

	var variant struct {
		EntryPointCall *CallTrace `json:"EntryPointCall"`
	}

	if err := json.Unmarshal(data, &variant); err != nil {
		return fmt.Errorf("call trace node: %w", err)
	}

	n.EntryPointCall = variant.EntryPointCall

	return nil
}

// VersionedCallTrace is a trace file root: `{"V1": {...}}` or a bare call trace.
type VersionedCallTrace struct {
	CallTrace
}

// UnmarshalJSON unwraps the optional version envelope.
func (v *VersionedCallTrace) UnmarshalJSON(data []byte) error {
	var envelope struct {
		V1 *CallTrace `json:"V1"`
	}

	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	if envelope.V1 != nil {
		v.CallTrace = *envelope.V1
		return nil
	}

	return json.Unmarshal(data, &v.CallTrace)
}

// ExecutionGroup holds every trace recorded for one program artifact.
type ExecutionGroup struct {
	SourceSierraPath Path
	CasmLevelInfos   []CasmLevelInfo
}
