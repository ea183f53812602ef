package extract

import "sync"

// Registry maps model identifiers to the policy used for their output.
// Models without an entry use the fallback policy.
type Registry struct {
	mu       sync.RWMutex
	policies map[string]Policy
	fallback Policy
}

// NewRegistry creates a Registry. A nil fallback selects Pattern.
func NewRegistry(fallback Policy) *Registry {
	if fallback == nil {
		fallback = Pattern{}
	}
	return &Registry{
		policies: make(map[string]Policy),
		fallback: fallback,
	}
}

// DefaultRegistry returns the built-in table: deepseek-r1:32b reasons at length
// before answering, so only its closing statements are inspected.
func DefaultRegistry() *Registry {
	r := NewRegistry(Pattern{})
	r.Set("deepseek-r1:32b", Tail{Statements: DefaultStatements})
	return r
}

// Set registers p for model, replacing any previous entry.
func (r *Registry) Set(model string, p Policy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.policies[model] = p
}

// Replace swaps the whole table at once; config reloads go through here
// while requests keep extracting.
func (r *Registry) Replace(policies map[string]Policy) {
	next := make(map[string]Policy, len(policies))
	for k, v := range policies {
		next[k] = v
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.policies = next
}

// Policy returns the policy for model, falling back when none is registered.
func (r *Registry) Policy(model string) Policy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.policies[model]; ok {
		return p
	}
	return r.fallback
}

// Extract recovers the tier from text using the policy registered for model.
func (r *Registry) Extract(text, model string) Level {
	return r.Policy(model).Extract(text)
}

var defaultRegistry = DefaultRegistry()

// Extract recovers the tier using the built-in registry.
func Extract(text, model string) Level {
	return defaultRegistry.Extract(text, model)
}
