package treeio

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// Patch applies an RFC 6902 patch to a document. The document may be
// YAML or JSON; the patch itself is JSON. The result is returned as
// JSON.
func Patch(doc, patch []byte) ([]byte, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocument, err)
	}
	jDoc, err := yaml.YAMLToJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocument, err)
	}
	out, err := ops.Apply(jDoc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocument, err)
	}
	return out, nil
}

// MergePatch applies an RFC 7386 merge patch to a document, both
// converted to JSON first. The result is returned as JSON.
func MergePatch(doc, patch []byte) ([]byte, error) {
	jDoc, err := yaml.YAMLToJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocument, err)
	}
	jPatch, err := yaml.YAMLToJSON(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocument, err)
	}
	out, err := jsonpatch.MergePatch(jDoc, jPatch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocument, err)
	}
	return out, nil
}
