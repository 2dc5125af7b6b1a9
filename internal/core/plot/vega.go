package plot

// Minimal Vega-Lite v5 document model, covering only what the two chart
// builders emit. The specs render in-browser with vega-embed.

const schemaURL = "https://vega.github.io/schema/vega-lite/v5.json"

type Spec struct {
	Schema string  `json:"$schema"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Layer  []Layer `json:"layer"`
}

type Layer struct {
	Data     Data     `json:"data"`
	Mark     Mark     `json:"mark"`
	Encoding Encoding `json:"encoding"`
}

type Data struct {
	Values any `json:"values"`
}

type Mark struct {
	Type      string  `json:"type"`
	Filled    bool    `json:"filled,omitempty"`
	Size      float64 `json:"size,omitempty"`
	Opacity   float64 `json:"opacity,omitempty"`
	Color     string  `json:"color,omitempty"`
	FontSize  int     `json:"fontSize,omitempty"`
	Align     string  `json:"align,omitempty"`
	Baseline  string  `json:"baseline,omitempty"`
	DY        int     `json:"dy,omitempty"`
	LineBreak string  `json:"lineBreak,omitempty"`
}

// Channel is one encoding channel (x, y, color, shape, ...); kept as a
// free-form object since Vega-Lite channel definitions vary widely.
type Channel map[string]any

// Encoding maps channel names to definitions; tooltip takes an array, so
// values stay untyped.
type Encoding map[string]any

func field(name, typ string) Channel {
	return Channel{"field": name, "type": typ}
}

func fieldWithAxis(name, typ, title string, grid bool) Channel {
	return Channel{
		"field": name,
		"type":  typ,
		"axis": map[string]any{
			"title":  title,
			"ticks":  grid,
			"labels": grid,
			"grid":   grid,
		},
	}
}

// luminanceSwitch shows a text layer only on backgrounds brighter (or
// darker) than the YUV threshold 186.
func luminanceSwitch(bright bool) Channel {
	op := "<="
	if bright {
		op = ">"
	}
	return Channel{
		"condition": map[string]any{
			"test":  "(datum.r * 0.299 + datum.g * 0.587 + datum.b * 0.114) " + op + " 186",
			"value": 1,
		},
		"value": 0,
	}
}
