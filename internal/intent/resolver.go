package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"jarvis-backend/internal/model"
	pkgLog "jarvis-backend/pkg/log"
	"jarvis-backend/pkg/openai"
)

type resolver struct {
	l   pkgLog.Logger
	llm Completer
}

// New creates the two-tier intent resolver: rule patterns first, generative
// classification as fallback.
func New(l pkgLog.Logger, llm Completer) Resolver {
	return &resolver{l: l, llm: llm}
}

func (r *resolver) Resolve(ctx context.Context, text string) model.Intent {
	normalized := strings.ToLower(strings.TrimSpace(text))

	if ruleIntent, ok := r.ruleResolve(normalized); ok && ruleIntent.Confidence > AcceptanceThreshold {
		r.l.Infof(ctx, "intent resolver: rule match %s", ruleIntent.Kind)
		return ruleIntent
	}

	r.l.Infof(ctx, "intent resolver: no rule match, using LLM fallback")
	return r.llmResolve(ctx, normalized)
}

// ruleResolve matches the normalized text against the ordered pattern set.
func (r *resolver) ruleResolve(text string) (model.Intent, bool) {
	for _, p := range rulePatterns {
		match := p.re.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		return model.Intent{
			Kind:       p.kind,
			Slots:      extractSlots(p.kind, text, match),
			Confidence: RuleConfidence,
			SourceText: text,
		}, true
	}

	return model.Intent{}, false
}

// llmResolve delegates to the generative classifier. Every failure mode
// (call error, malformed output, unknown label) degrades to IntentUnknown.
func (r *resolver) llmResolve(ctx context.Context, text string) model.Intent {
	unknown := model.Intent{
		Kind:       model.IntentUnknown,
		Slots:      map[string]string{},
		Confidence: 0.0,
		SourceText: text,
	}

	if r.llm == nil {
		r.l.Warn(ctx, "intent resolver: no LLM configured, returning unknown")
		return unknown
	}

	raw, err := r.llm.Complete(ctx, openai.CompleteRequest{
		System:      llmSystemPrompt,
		Prompt:      fmt.Sprintf(llmPromptTemplate, text),
		Temperature: 0.3,
		MaxTokens:   200,
		JSONOnly:    true,
	})
	if err != nil {
		r.l.Errorf(ctx, "intent resolver: LLM classification failed: %v", err)
		return unknown
	}

	var parsed struct {
		Intent     string         `json:"intent"`
		Slots      map[string]any `json:"slots"`
		Confidence float64        `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		r.l.Errorf(ctx, "intent resolver: malformed LLM output: %v", err)
		return unknown
	}

	slots := make(map[string]string, len(parsed.Slots))
	for k, v := range parsed.Slots {
		slots[k] = fmt.Sprintf("%v", v)
	}

	return model.Intent{
		Kind:       model.ParseIntentKind(parsed.Intent),
		Slots:      slots,
		Confidence: parsed.Confidence,
		SourceText: text,
	}
}

// stripCodeFences removes a Markdown code fence wrapper if the model added one.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
