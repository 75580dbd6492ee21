// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

package lottie

import (
	"encoding/json"
	"fmt"
	"log"

	goversion "github.com/hashicorp/go-version"

	"github.com/karimalambert/Lottie-Windows/internal/issues"
)

// Required top-level fields. Their absence is fatal to parsing: without
// them the document has no defined canvas or timeline.
var requiredFields = []string{"v", "w", "h", "ip"}

// Parse reads a BodyMovin document. Fatal conditions (not valid JSON,
// missing required fields, no layers) return an error; everything else
// is reported through iss and parsing carries on.
func Parse(data []byte, iss *issues.Issues) (*LottieComposition, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		iss.Report(issues.CodeParseFailure, "document is not valid JSON: %s", err)
		return nil, fmt.Errorf("parsing Lottie document: %w", err)
	}

	for _, field := range requiredFields {
		if _, ok := top[field]; !ok {
			iss.Report(issues.CodeMissingField, "required field %q is missing", field)
			return nil, fmt.Errorf("parsing Lottie document: required field %q is missing", field)
		}
	}

	var raw struct {
		Version   string            `json:"v"`
		Name      string            `json:"nm"`
		Width     float64           `json:"w"`
		Height    float64           `json:"h"`
		InPoint   float64           `json:"ip"`
		OutPoint  float64           `json:"op"`
		FrameRate float64           `json:"fr"`
		Is3D      int               `json:"ddd"`
		Layers    []Layer           `json:"layers"`
		Markers   []Marker          `json:"markers"`
		Assets    []json.RawMessage `json:"assets"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		iss.Report(issues.CodeParseFailure, "document body failed to decode: %s", err)
		return nil, fmt.Errorf("parsing Lottie document: %w", err)
	}

	if len(raw.Layers) == 0 {
		iss.Report(issues.CodeNoLayers, "document has no layers")
		return nil, fmt.Errorf("parsing Lottie document: no layers")
	}

	comp := &LottieComposition{
		Name:      raw.Name,
		Width:     raw.Width,
		Height:    raw.Height,
		InPoint:   raw.InPoint,
		OutPoint:  raw.OutPoint,
		FrameRate: raw.FrameRate,
		Is3D:      raw.Is3D != 0,
		Layers:    raw.Layers,
		Markers:   raw.Markers,
	}

	v, err := goversion.NewVersion(raw.Version)
	if err != nil {
		iss.Report(issues.CodeInvalidVersion, "version %q does not parse: %s", raw.Version, err)
	} else {
		comp.Version = v
		if !supportedConstraint.Check(v) {
			iss.Report(issues.CodeUnsupportedVersion,
				"BodyMovin version %s is outside the supported range %s", v, SupportedVersions)
		}
	}

	comp.Assets = parseAssets(raw.Assets)
	comp.Extras = collectExtras(top)

	log.Printf("[DEBUG] lottie: parsed %q: %gx%g, frames %g..%g @ %g fps, %d layers, %d assets",
		comp.Name, comp.Width, comp.Height, comp.InPoint, comp.OutPoint, comp.FrameRate,
		len(comp.Layers), len(comp.Assets))
	return comp, nil
}

// parseAssets decodes the asset collection. Precomp assets carry their
// own layer list; image assets carry only metadata.
func parseAssets(raws []json.RawMessage) []Asset {
	assets := make([]Asset, 0, len(raws))
	for _, rawAsset := range raws {
		var a Asset
		if err := json.Unmarshal(rawAsset, &a); err != nil {
			log.Printf("[WARN] lottie: skipping undecodable asset: %s", err)
			continue
		}
		var withLayers struct {
			Layers []Layer `json:"layers"`
		}
		if err := json.Unmarshal(rawAsset, &withLayers); err == nil {
			a.Layers = withLayers.Layers
		}
		assets = append(assets, a)
	}
	return assets
}

// modeledFields are the top-level fields the parser decodes into the
// model; anything else lands in Extras.
var modeledFields = map[string]bool{
	"v": true, "nm": true, "w": true, "h": true, "ip": true, "op": true,
	"fr": true, "ddd": true, "layers": true, "markers": true, "assets": true,
}

func collectExtras(top map[string]json.RawMessage) map[string]json.RawMessage {
	var extras map[string]json.RawMessage
	for k, v := range top {
		if modeledFields[k] {
			continue
		}
		if extras == nil {
			extras = make(map[string]json.RawMessage)
		}
		extras[k] = v
	}
	return extras
}
