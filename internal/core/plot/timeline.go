package plot

import (
	"github.com/argumentlab/miner/internal/core/model"
)

type timelineNodeRow struct {
	ID      string `json:"id"`
	Seq     int    `json:"sequence"`
	Speaker string `json:"speaker"`
	Type    string `json:"type"`
	Label   string `json:"label_text"`
	Content string `json:"content_full"`
	Color   string `json:"color"`
	R       int    `json:"r"`
	G       int    `json:"g"`
	B       int    `json:"b"`
}

type timelineEdgeRow struct {
	X1    int     `json:"x1"`
	Y1    string  `json:"y1"`
	X2    int     `json:"x2"`
	Y2    string  `json:"y2"`
	Label string  `json:"label"`
	MidX  float64 `json:"mid_x"`
}

// Timeline renders the graph chronologically: x is the transcript
// sequence, y the speaker, colour carries over from the topic
// coordinates. Nodes without a sequence index are excluded, but colours
// are encoded over the full node set so each node keeps the colour it
// has on the topic map. Returns nil when fewer than 2 nodes remain or a
// remaining node lacks a projected position.
func Timeline(g *model.ArgumentGraph, schema model.Schema, enc ColorEncoder) *Spec {
	if g == nil {
		return nil
	}

	var nodes []model.Node
	var src []int
	for i, n := range g.Nodes {
		if n.Sequence != nil {
			nodes = append(nodes, n)
			src = append(src, i)
		}
	}
	if len(nodes) < 2 {
		return nil
	}
	for _, n := range nodes {
		if n.Position2D == nil {
			return nil
		}
	}

	colors := enc.Encode(g.Nodes)

	nodeRows := make([]timelineNodeRow, len(nodes))
	place := make(map[string]timelineNodeRow, len(nodes))
	for i, n := range nodes {
		speaker := n.Speaker
		if speaker == "" {
			speaker = "Unknown"
		}
		row := timelineNodeRow{
			ID:      n.ID,
			Seq:     *n.Sequence,
			Speaker: speaker,
			Type:    n.Type,
			Label:   nodeLabel(n),
			Content: n.Content,
			Color:   colors[src[i]].Hex(),
			R:       colors[src[i]].R,
			G:       colors[src[i]].G,
			B:       colors[src[i]].B,
		}
		nodeRows[i] = row
		place[n.ID] = row
	}

	var edgeRows []timelineEdgeRow
	for _, e := range g.Edges {
		src, okS := place[e.Source]
		dst, okT := place[e.Target]
		if !okS || !okT {
			continue // endpoint missing or without a sequence
		}
		edgeRows = append(edgeRows, timelineEdgeRow{
			X1:    src.Seq,
			Y1:    src.Speaker,
			X2:    dst.Seq,
			Y2:    dst.Speaker,
			Label: e.Label,
			MidX:  float64(src.Seq+dst.Seq) / 2,
		})
	}

	xChannel := fieldWithAxis("sequence", "quantitative", "Time (Chronological Order)", true)
	yChannel := fieldWithAxis("speaker", "nominal", "Speaker", true)

	edgeLayer := Layer{
		Data: Data{Values: edgeRows},
		Mark: Mark{Type: "rule", Color: "gray", Opacity: 0.6},
		Encoding: Encoding{
			"x":  field("x1", "quantitative"),
			"y":  field("y1", "nominal"),
			"x2": Channel{"field": "x2"},
			"y2": Channel{"field": "y2"},
		},
	}

	edgeLabelLayer := Layer{
		Data: Data{Values: edgeRows},
		Mark: Mark{Type: "text", Align: "center", Baseline: "middle", FontSize: 9, Color: "gray", DY: -8},
		Encoding: Encoding{
			"x":    field("mid_x", "quantitative"),
			"y":    Channel{"value": 150},
			"text": field("label", "nominal"),
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
		Height: 300,
		Layer: []Layer{
			edgeLayer,
			edgeLabelLayer,
			pointLayer,
			textLayer(nodeRows, xChannel, yChannel, true),
			textLayer(nodeRows, xChannel, yChannel, false),
		},
	}
}
