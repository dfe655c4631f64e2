package pagegen

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"bevgenie-be/pkg/intent"
	"bevgenie-be/pkg/knowledge"
	"bevgenie-be/pkg/llm"
	"bevgenie-be/pkg/persona"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

// Generation modes reported to the caller.
const (
	ModeTemplateFill  = "template_fill"
	ModeFullSynthesis = "full_synthesis"
	ModeFailed        = "failed"
)

// maxRetries bounds the slow path to 1 initial attempt + 2 retries.
const maxRetries = 2

// cachedPage is a memoized page plus the mode that produced it.
type cachedPage struct {
	page GeneratedPage
	mode string
}

// Request carries everything needed to generate one page. One request per
// chat turn; the orchestrator never writes to storage.
type Request struct {
	Message      string
	ClickContext string
	PageType     intent.PageType
	Persona      *persona.ScoreVector
	History      []llm.Message
}

// Result is the outcome of one generation attempt chain. Success is true
// only when Page passed validation with zero violations.
type Result struct {
	Success    bool
	Page       *GeneratedPage
	Mode       string
	Violations []string
	Err        error
	Attempts   int
	Elapsed    time.Duration
}

// Orchestrator runs the two-path generation state machine: a fast
// template-fill attempt, then a bounded full-synthesis retry loop with
// validation feedback injected into later prompts.
type Orchestrator struct {
	llmProvider llm.Provider
	searcher    knowledge.Searcher
	memo        *gocache.Cache
	logger      *log.Logger

	// synthesisModel overrides the provider default on the slow path, where
	// schema adherence matters more than latency. Empty keeps the default.
	synthesisModel string

	fastTimeout time.Duration
	slowTimeout time.Duration
}

func NewOrchestrator(llmProvider llm.Provider, searcher knowledge.Searcher, logger *log.Logger, synthesisModel string) *Orchestrator {
	return &Orchestrator{
		llmProvider:    llmProvider,
		searcher:       searcher,
		synthesisModel: synthesisModel,
		// Best-effort memoization of generated pages; a cold cache changes
		// latency, never behavior.
		memo:        gocache.New(1*time.Hour, 10*time.Minute),
		logger:      logger,
		fastTimeout: 8 * time.Second,
		slowTimeout: 25 * time.Second,
	}
}

// Generate produces a page for the request. Failures are reported in the
// Result, never as a returned error: page generation is not a primary-path
// concern and the caller always keeps the chat reply.
func (o *Orchestrator) Generate(ctx context.Context, req *Request) *Result {
	start := time.Now()

	cacheKey := o.cacheKey(req)
	if cached, found := o.memo.Get(cacheKey); found {
		entry := cached.(cachedPage)
		page := entry.page
		o.logger.Printf("[PAGEGEN] Cache hit for %s", req.PageType)
		return &Result{Success: true, Page: &page, Mode: entry.mode, Elapsed: time.Since(start)}
	}

	// Template selection and knowledge retrieval are independent network
	// calls; run them concurrently and join before any content fill.
	var (
		tmpl     *Template
		snippets []knowledge.Snippet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tmpl = o.selectTemplate(gctx, req)
		return nil
	})
	g.Go(func() error {
		found, err := o.searcher.Search(gctx, req.Message, personaTags(req.Persona), maxSnippets)
		if err != nil {
			o.logger.Printf("[PAGEGEN] Knowledge retrieval failed, continuing without: %v", err)
			return nil
		}
		snippets = found
		return nil
	})
	_ = g.Wait()

	result := &Result{Mode: ModeFailed}

	// Fast path: fill the selected template. Any failure falls through to
	// full synthesis without surfacing an error.
	if tmpl != nil {
		if page, err := o.templateFill(ctx, tmpl, req, snippets); err != nil {
			o.logger.Printf("[PAGEGEN] Template fill failed, falling back to synthesis: %v", err)
		} else if violations := Validate(page); len(violations) > 0 {
			o.logger.Printf("[PAGEGEN] Template fill invalid (%d violations), falling back to synthesis", len(violations))
		} else {
			o.memo.Set(cacheKey, cachedPage{page: *page, mode: ModeTemplateFill}, gocache.DefaultExpiration)
			result.Success = true
			result.Page = page
			result.Mode = ModeTemplateFill
			result.Elapsed = time.Since(start)
			return result
		}
	}

	// Slow path: full synthesis with a bounded retry loop. Violations from
	// failed attempts accumulate into the next prompt as corrective
	// feedback; transport errors retry without feedback injection.
	var feedback []string
	for attempt := 0; attempt <= maxRetries; attempt++ {
		result.Attempts++
		page, err := o.fullSynthesis(ctx, req, snippets, feedback)
		if err != nil {
			o.logger.Printf("[PAGEGEN] Synthesis attempt %d errored: %v", attempt+1, err)
			result.Err = err
			continue
		}

		violations := Validate(page)
		if len(violations) == 0 {
			o.memo.Set(cacheKey, cachedPage{page: *page, mode: ModeFullSynthesis}, gocache.DefaultExpiration)
			result.Success = true
			result.Page = page
			result.Mode = ModeFullSynthesis
			result.Violations = nil
			result.Err = nil
			result.Elapsed = time.Since(start)
			return result
		}

		o.logger.Printf("[PAGEGEN] Synthesis attempt %d invalid: %s", attempt+1, strings.Join(violations, "; "))
		result.Violations = violations
		feedback = append(feedback, violations...)
	}

	result.Elapsed = time.Since(start)
	return result
}

// selectTemplate picks a template for the page type via a lightweight LLM
// classification call, falling back to keyword overlap scoring on any error.
func (o *Orchestrator) selectTemplate(ctx context.Context, req *Request) *Template {
	candidates := TemplatesFor(req.PageType)
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0]
	}

	selCtx, cancel := context.WithTimeout(ctx, o.fastTimeout)
	defer cancel()

	response, err := o.llmProvider.Generate(selCtx, buildSelectionPrompt(req.Message, candidates), llm.WithTemperature(0.0))
	if err == nil {
		var choice struct {
			Template string `json:"template"`
		}
		if raw := extractJSON(response); raw != "" {
			if json.Unmarshal([]byte(raw), &choice) == nil {
				for _, t := range candidates {
					if t.Name == choice.Template {
						return t
					}
				}
			}
		}
	} else {
		o.logger.Printf("[PAGEGEN] Template classification failed, using keyword fallback: %v", err)
	}

	return keywordSelect(req.Message, candidates)
}

func (o *Orchestrator) templateFill(ctx context.Context, tmpl *Template, req *Request, snippets []knowledge.Snippet) (*GeneratedPage, error) {
	fillCtx, cancel := context.WithTimeout(ctx, o.fastTimeout)
	defer cancel()

	response, err := o.llmProvider.Generate(fillCtx, buildFillPrompt(tmpl, req, snippets))
	if err != nil {
		return nil, err
	}

	raw := extractJSON(response)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in fill response")
	}

	var values map[string]string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("fill response parse failed: %w", err)
	}

	return tmpl.Fill(values), nil
}

func (o *Orchestrator) fullSynthesis(ctx context.Context, req *Request, snippets []knowledge.Snippet, feedback []string) (*GeneratedPage, error) {
	synthCtx, cancel := context.WithTimeout(ctx, o.slowTimeout)
	defer cancel()

	var opts []llm.Option
	if o.synthesisModel != "" {
		opts = append(opts, llm.WithModel(o.synthesisModel))
	}
	response, err := o.llmProvider.Generate(synthCtx, buildSynthesisPrompt(req, snippets, feedback), opts...)
	if err != nil {
		return nil, err
	}

	raw := extractJSON(response)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in synthesis response")
	}

	var page GeneratedPage
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		return nil, fmt.Errorf("synthesis response parse failed: %w", err)
	}
	page.PageType = req.PageType

	return &page, nil
}

func (o *Orchestrator) cacheKey(req *Request) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(req.Message)), " ")
	return string(req.PageType) + "|" + normalized
}

// keywordSelect scores candidates by bestFor phrase overlap with the
// message; ties and total misses fall back to the first template.
func keywordSelect(message string, candidates []*Template) *Template {
	lowered := strings.ToLower(message)
	best := candidates[0]
	bestScore := 0
	for _, t := range candidates {
		score := 0
		for _, phrase := range t.BestFor {
			for _, word := range strings.Fields(phrase) {
				if strings.Contains(lowered, word) {
					score++
				}
			}
		}
		if score > bestScore {
			best, bestScore = t, score
		}
	}
	return best
}

// extractJSON returns the first brace-delimited object in a model response,
// tolerating markdown fences and surrounding prose.
func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")
	if startIdx == -1 || endIdx <= startIdx {
		return ""
	}
	return response[startIdx : endIdx+1]
}

func personaTags(p *persona.ScoreVector) []string {
	if p == nil {
		return nil
	}
	return p.Tags()
}
