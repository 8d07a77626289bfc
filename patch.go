package qmlon

import (
	"encoding/json"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/qmlon/debug"
	"github.com/signadot/qmlon/ir"
)

var ErrPatch = errors.New("patch")

// Patch applies an RFC 6902 JSON patch to doc. Patch paths address the JSON
// mapping of doc, so properties live under /properties and children under
// /children:
//
//	[{"op": "replace", "path": "/properties/id", "value": "villain"}]
//
// doc is left unchanged.
func Patch(doc *ir.Value, patch []byte) (*ir.Value, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return applyPatch(doc, ops)
}

// PatchValue is Patch with the operations given as a QMLON list of
// anonymous objects, one per operation:
//
//	[{ op: "remove" path: "/children/0" }]
//
// Operation values are mapped to JSON like any other value.
func PatchValue(doc, patch *ir.Value) (*ir.Value, error) {
	list, err := patch.AsList()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	raw := make([]map[string]json.RawMessage, len(list))
	for i, e := range list {
		obj, err := e.AsObject()
		if err != nil {
			return nil, fmt.Errorf("%w: operation %d: %w", ErrPatch, i, err)
		}
		m := make(map[string]json.RawMessage, len(obj.Properties))
		for _, k := range obj.Keys() {
			d, err := ir.ToJSON(obj.Properties[k])
			if err != nil {
				return nil, fmt.Errorf("%w: operation %d: %w", ErrPatch, i, err)
			}
			m[k] = d
		}
		raw[i] = m
	}
	d, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return Patch(doc, d)
}

func applyPatch(doc *ir.Value, ops jsonpatch.Patch) (*ir.Value, error) {
	d, err := ir.ToJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("patched %s\n", out)
	}
	res, err := ir.FromJSON(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}
