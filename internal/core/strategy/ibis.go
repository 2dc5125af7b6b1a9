package strategy

import (
	"github.com/argumentlab/miner/internal/core/model"
	"github.com/argumentlab/miner/internal/llm"
)

// IBISSchema fixes the Issue-Based Information System vocabulary and the
// plot shape for each node type.
var IBISSchema = model.Schema{
	NodeTypes: []model.NodeTypeSpec{
		{Name: "issue", Shape: "circle"},
		{Name: "position", Shape: "square"},
		{Name: "argument", Shape: "triangle-right"},
		{Name: "decision", Shape: "diamond"},
	},
	EdgeLabels: []string{"proposes", "supports", "objects_to", "decides", "replies_to"},
}

func NewIBIS(llmClient llm.LLMClient, template string) MiningStrategy {
	return &promptStrategy{
		name:     "ibis",
		schema:   IBISSchema,
		llm:      llmClient,
		template: template,
	}
}
