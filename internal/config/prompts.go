package config

// Default prompt templates for the bundled mining strategies. Users can
// replace these in the [prompts] section of the config file.

const DefaultIBISPrompt = `You are an expert in argumentation mining. Structure the conversation log below as an IBIS graph.

# Node types
- issue: a question or point of contention
- position: a proposal or stance answering an issue
- argument: a reason supporting or challenging a position
- decision: an adopted resolution

# Edge labels (source -> target)
- position -proposes-> issue
- argument -supports-> position (affirming reason)
- argument -objects_to-> position (concern or counter-reason)
- decision -decides-> position (the adopted proposal)
- any -replies_to-> any (direct conversational reply)

# Rules
1. Keep each node's "content" a concise one-sentence summary of a single discourse unit.
2. Set "speaker" to the participant who said it, when identifiable.
3. Set "sequence" to the 1-based order of appearance in the log on every node.

# Output format (strict JSON, no other text)
{"nodes": [{"id": "n1", "type": "issue", "content": "Which language should we use?", "speaker": "Tanaka", "sequence": 1}], "edges": [{"source": "n2", "target": "n1", "label": "proposes"}]}
"type" must be strictly one of: issue, position, argument, decision.

<CONVERSATION>
%s
</CONVERSATION>`

const DefaultToulminPrompt = `You are an expert in argumentation mining. Structure the conversation log below according to the Toulmin model.

# Node types
- claim: the assertion being argued for
- data: facts or evidence offered for a claim
- warrant: the reasoning that connects data to a claim
- backing: support for a warrant
- qualifier: a statement limiting the strength of a claim
- rebuttal: a condition or objection undermining a claim

# Edge labels (source -> target)
- data -grounds-> claim
- warrant -warrants-> claim
- backing -backs-> warrant
- qualifier -qualifies-> claim
- rebuttal -rebuts-> claim
- any -replies_to-> any

# Rules
1. Keep each node's "content" a concise one-sentence summary of a single discourse unit.
2. Set "speaker" to the participant who said it, when identifiable.
3. Set "sequence" to the 1-based order of appearance in the log on every node.

# Output format (strict JSON, no other text)
{"nodes": [{"id": "n1", "type": "claim", "content": "We should ship in March.", "speaker": "Sato", "sequence": 1}], "edges": [{"source": "n2", "target": "n1", "label": "grounds"}]}
"type" must be strictly one of: claim, data, warrant, backing, qualifier, rebuttal.

<CONVERSATION>
%s
</CONVERSATION>`
