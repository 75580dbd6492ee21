// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

// Package serializer renders a composition graph for human inspection:
// as YAML, as XML, or as an indented tree. The dumps are one-way;
// nothing in the toolchain reads them back.
package serializer

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/xlab/treeprint"
	ctyyaml "github.com/zclconf/go-cty-yaml"
	"github.com/zclconf/go-cty/cty"

	"github.com/karimalambert/Lottie-Windows/internal/geometry"
	"github.com/karimalambert/Lottie-Windows/internal/wincomp"
)

// ToCty converts the owned tree rooted at root to a cty object value.
// Node attributes serialize as strings; children as a tuple, so sibling
// nodes of different kinds coexist.
func ToCty(root wincomp.Object) cty.Value {
	attrs := map[string]cty.Value{
		"kind": cty.StringVal(root.Kind().String()),
	}
	base := root.Base()
	if base.Name != "" {
		attrs["name"] = cty.StringVal(base.Name)
	}
	if base.ShortDescription != "" {
		attrs["description"] = cty.StringVal(base.ShortDescription)
	}
	if !base.Properties.IsEmpty() {
		props := map[string]cty.Value{}
		for _, name := range base.Properties.Names() {
			v, _ := base.Properties.Get(name)
			props[name] = cty.StringVal(v.String())
		}
		attrs["properties"] = cty.ObjectVal(props)
	}
	if len(base.Animators) > 0 {
		targets := make([]cty.Value, 0, len(base.Animators))
		for _, a := range base.Animators {
			targets = append(targets, cty.StringVal(a.Target))
		}
		attrs["animated"] = cty.TupleVal(targets)
	}
	for name, value := range slotAttributes(root) {
		attrs[name] = cty.StringVal(value)
	}

	children := wincomp.OwnedChildren(root)
	if len(children) > 0 {
		vals := make([]cty.Value, 0, len(children))
		for _, c := range children {
			vals = append(vals, ToCty(c))
		}
		attrs["children"] = cty.TupleVal(vals)
	}
	return cty.ObjectVal(attrs)
}

// MarshalYAML renders the graph as YAML.
func MarshalYAML(root wincomp.Object) ([]byte, error) {
	v := ToCty(root)
	out, err := ctyyaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshalling graph to YAML: %w", err)
	}
	return out, nil
}

// xmlNode mirrors one graph node for the XML encoder.
type xmlNode struct {
	XMLName     xml.Name
	Name        string `xml:"name,attr,omitempty"`
	Description string `xml:"description,attr,omitempty"`
	Detail      string `xml:"detail,attr,omitempty"`
	Animated    string `xml:"animated,attr,omitempty"`
	Children    []xmlNode
}

// MarshalXML renders the graph as indented XML, one element per node,
// named by node kind.
func MarshalXML(root wincomp.Object) ([]byte, error) {
	out, err := xml.MarshalIndent(toXML(root), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling graph to XML: %w", err)
	}
	return out, nil
}

func toXML(o wincomp.Object) xmlNode {
	base := o.Base()
	n := xmlNode{
		XMLName:     xml.Name{Local: o.Kind().String()},
		Name:        base.Name,
		Description: base.ShortDescription,
		Detail:      detailString(o),
	}
	if len(base.Animators) > 0 {
		targets := make([]string, 0, len(base.Animators))
		for _, a := range base.Animators {
			targets = append(targets, a.Target)
		}
		n.Animated = strings.Join(targets, ",")
	}
	for _, c := range wincomp.OwnedChildren(o) {
		n.Children = append(n.Children, toXML(c))
	}
	return n
}

// DumpTree renders the graph as an indented tree, one line per node.
func DumpTree(root wincomp.Object) string {
	tree := treeprint.NewWithRoot(nodeLabel(root))
	addBranches(tree, root)
	return tree.String()
}

func addBranches(branch treeprint.Tree, o wincomp.Object) {
	for _, c := range wincomp.OwnedChildren(o) {
		child := branch.AddBranch(nodeLabel(c))
		addBranches(child, c)
	}
}

func nodeLabel(o wincomp.Object) string {
	var sb strings.Builder
	sb.WriteString(o.Kind().String())
	if name := o.Base().Name; name != "" {
		fmt.Fprintf(&sb, " %q", name)
	}
	if detail := detailString(o); detail != "" {
		sb.WriteString(" [")
		sb.WriteString(detail)
		sb.WriteString("]")
	}
	return sb.String()
}

// slotAttributes summarizes the set slots of a node as strings keyed by
// slot name.
func slotAttributes(o wincomp.Object) map[string]string {
	out := map[string]string{}
	switch n := o.(type) {
	case wincomp.Visual:
		vb := n.VisualState()
		putVec3(out, "centerPoint", vb.CenterPoint)
		putVec3(out, "offset", vb.Offset)
		putScalar(out, "rotationDegrees", vb.RotationAngleInDegrees)
		putVec3(out, "rotationAxis", vb.RotationAxis)
		putVec3(out, "scale", vb.Scale)
		if vb.TransformMatrix != nil {
			out["transformMatrix"] = fmt.Sprintf("%+v", *vb.TransformMatrix)
		}
		putVec2(out, "size", vb.Size)
		putScalar(out, "opacity", vb.Opacity)
		if vb.IsVisible != nil {
			out["isVisible"] = fmt.Sprintf("%t", *vb.IsVisible)
		}
	case wincomp.CompositionShape:
		sb := n.ShapeState()
		putVec2(out, "centerPoint", sb.CenterPoint)
		putVec2(out, "offset", sb.Offset)
		putScalar(out, "rotationDegrees", sb.RotationAngleInDegrees)
		putVec2(out, "scale", sb.Scale)
		if sb.TransformMatrix != nil {
			out["transformMatrix"] = fmt.Sprintf("%+v", *sb.TransformMatrix)
		}
	case *wincomp.ColorBrush:
		if n.Color != nil {
			out["color"] = fmt.Sprintf("argb(%.3g,%.3g,%.3g,%.3g)", n.Color.A, n.Color.R, n.Color.G, n.Color.B)
		}
	case *wincomp.ExpressionAnimation:
		out["expression"] = n.Expression
	}
	return out
}

// detailString flattens slotAttributes into one deterministic string.
func detailString(o wincomp.Object) string {
	attrs := slotAttributes(o)
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+attrs[k])
	}
	return strings.Join(parts, " ")
}

func putVec2(out map[string]string, name string, v *geometry.Vector2) {
	if v != nil {
		out[name] = fmt.Sprintf("(%g,%g)", v.X, v.Y)
	}
}

func putVec3(out map[string]string, name string, v *geometry.Vector3) {
	if v != nil {
		out[name] = fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
	}
}

func putScalar(out map[string]string, name string, v *float64) {
	if v != nil {
		out[name] = fmt.Sprintf("%g", *v)
	}
}
