package strategy

import (
	"github.com/argumentlab/miner/internal/core/model"
	"github.com/argumentlab/miner/internal/llm"
)

// ToulminSchema covers the six roles of the Toulmin argumentation model.
var ToulminSchema = model.Schema{
	NodeTypes: []model.NodeTypeSpec{
		{Name: "claim", Shape: "circle"},
		{Name: "data", Shape: "square"},
		{Name: "warrant", Shape: "triangle-right"},
		{Name: "backing", Shape: "cross"},
		{Name: "qualifier", Shape: "triangle-up"},
		{Name: "rebuttal", Shape: "diamond"},
	},
	EdgeLabels: []string{"grounds", "warrants", "backs", "qualifies", "rebuts", "replies_to"},
}

func NewToulmin(llmClient llm.LLMClient, template string) MiningStrategy {
	return &promptStrategy{
		name:     "toulmin",
		schema:   ToulminSchema,
		llm:      llmClient,
		template: template,
	}
}
