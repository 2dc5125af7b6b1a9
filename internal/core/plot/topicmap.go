package plot

import (
	"github.com/argumentlab/miner/internal/core/model"
)

type topicNodeRow struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Type    string  `json:"type"`
	Label   string  `json:"label_text"`
	Content string  `json:"content_full"`
	Color   string  `json:"color"`
	R       int     `json:"r"`
	G       int     `json:"g"`
	B       int     `json:"b"`
}

type topicEdgeRow struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// TopicMap renders the graph as a scatter of shaped, coloured nodes over
// the 2-D projection, with gray rules for edges and a label inside each
// node. Returns nil when there are fewer than 2 nodes or any node lacks
// a projected position.
func TopicMap(g *model.ArgumentGraph, schema model.Schema, enc ColorEncoder) *Spec {
	if g == nil || len(g.Nodes) < 2 {
		return nil
	}
	for _, n := range g.Nodes {
		if n.Position2D == nil {
			return nil
		}
	}

	colors := enc.Encode(g.Nodes)

	nodeRows := make([]topicNodeRow, len(g.Nodes))
	pos := make(map[string][2]float64, len(g.Nodes))
	for i, n := range g.Nodes {
		nodeRows[i] = topicNodeRow{
			ID:      n.ID,
			X:       n.Position2D[0],
			Y:       n.Position2D[1],
			Type:    n.Type,
			Label:   nodeLabel(n),
			Content: n.Content,
			Color:   colors[i].Hex(),
			R:       colors[i].R,
			G:       colors[i].G,
			B:       colors[i].B,
		}
		pos[n.ID] = *n.Position2D
	}

	var edgeRows []topicEdgeRow
	for _, e := range g.Edges {
		src, okS := pos[e.Source]
		dst, okT := pos[e.Target]
		if !okS || !okT {
			continue // endpoint not on the map
		}
		edgeRows = append(edgeRows, topicEdgeRow{X1: src[0], Y1: src[1], X2: dst[0], Y2: dst[1]})
	}

	xChannel := fieldWithAxis("x", "quantitative", "Topic Dimension 1", false)
	yChannel := fieldWithAxis("y", "quantitative", "Topic Dimension 2", false)

	edgeLayer := Layer{
		Data: Data{Values: edgeRows},
		Mark: Mark{Type: "rule", Color: "gray", Opacity: 0.4},
		Encoding: Encoding{
			"x":  field("x1", "quantitative"),
			"y":  field("y1", "quantitative"),
			"x2": Channel{"field": "x2"},
			"y2": Channel{"field": "y2"},
		},
	}

	pointLayer := Layer{
		Data: Data{Values: nodeRows},
		Mark: Mark{Type: "point", Filled: true, Size: 2000, Opacity: 0.9},
		Encoding: Encoding{
			"x":     xChannel,
			"y":     yChannel,
			"color": Channel{"field": "color", "type": "nominal", "scale": nil},
			"shape": shapeChannel(schema),
			"tooltip": []Channel{
				{"field": "content_full", "type": "nominal", "title": "Content"},
				{"field": "id", "type": "nominal", "title": "Node ID"},
			},
		},
	}

	return &Spec{
		Schema: schemaURL,
		Width:  700,
		Height: 500,
		Layer: []Layer{
			edgeLayer,
			pointLayer,
			textLayer(nodeRows, xChannel, yChannel, true),
			textLayer(nodeRows, xChannel, yChannel, false),
		},
	}
}

func shapeChannel(schema model.Schema) Channel {
	shapes := make([]string, len(schema.NodeTypes))
	for i, t := range schema.NodeTypes {
		shapes[i] = t.Shape
	}
	return Channel{
		"field": "type",
		"type":  "nominal",
		"scale": map[string]any{
			"domain": schema.NodeTypeNames(),
			"range":  shapes,
		},
		"legend": map[string]any{"title": "Node Type"},
	}
}

// textLayer writes the node label in black on bright backgrounds and in
// white on dark ones, switched by the luminance condition.
func textLayer(rows any, x, y Channel, bright bool) Layer {
	color := "white"
	if bright {
		color = "black"
	}
	return Layer{
		Data: Data{Values: rows},
		Mark: Mark{
			Type:      "text",
			Align:     "center",
			Baseline:  "middle",
			FontSize:  10,
			Color:     color,
			LineBreak: "\n",
		},
		Encoding: Encoding{
			"x":       x,
			"y":       y,
			"text":    field("label_text", "nominal"),
			"opacity": luminanceSwitch(bright),
		},
	}
}

// nodeLabel builds the two-line in-node label: speaker, then the content
// truncated to 30 runes.
func nodeLabel(n model.Node) string {
	speaker := n.Speaker
	if speaker == "" {
		speaker = "Unknown"
	}
	content := []rune(n.Content)
	if len(content) > 30 {
		return speaker + "\n" + string(content[:30]) + "..."
	}
	return speaker + "\n" + string(content)
}
