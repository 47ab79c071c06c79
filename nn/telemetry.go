package nn

// NetworkBlueprint contains the structural information of a built network.
type NetworkBlueprint struct {
	Samples    int              `json:"samples"`
	Attributes int              `json:"attributes"`
	TotalUnits int              `json:"total_units"`
	Layers     []LayerTelemetry `json:"layers"`
}

// LayerTelemetry describes all units of one complexity.
type LayerTelemetry struct {
	Complexity int             `json:"complexity"`
	MinError   int             `json:"min_error"`
	Units      []UnitTelemetry `json:"units"`
}

// UnitTelemetry describes a single unit.
type UnitTelemetry struct {
	Index    int    `json:"index"`
	Inputs   []int  `json:"inputs,omitempty"`
	Function string `json:"function"`
	Error    int    `json:"error"`
	Rule     string `json:"rule"`
}

// ExtractNetworkBlueprint walks the store layer by layer and describes every unit.
func ExtractNetworkBlueprint(s *Store) NetworkBlueprint {
	bp := NetworkBlueprint{
		Samples:    s.SampleCount(),
		Attributes: len(s.byLayer[0]),
		TotalUnits: s.Len(),
	}

	for c := 0; c <= s.MaxComplexity(); c++ {
		indices := s.byLayer[c]
		if len(indices) == 0 {
			continue
		}
		layer := LayerTelemetry{
			Complexity: c,
			MinError:   -1,
			Units:      make([]UnitTelemetry, 0, len(indices)),
		}
		for _, i := range indices {
			u := s.units[i]
			layer.Units = append(layer.Units, UnitTelemetry{
				Index:    i,
				Inputs:   append([]int(nil), u.Inputs...),
				Function: u.Function.String(),
				Error:    u.Error,
				Rule:     RuleString(s, i),
			})
			if c > 0 && (layer.MinError < 0 || u.Error < layer.MinError) {
				layer.MinError = u.Error
			}
		}
		bp.Layers = append(bp.Layers, layer)
	}
	return bp
}
