package extract

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// answerFirst states the tier once, then keeps talking.
var answerFirst = "Answer: L3." + strings.Repeat(" Further detail.", 8)

func TestExtract_DefaultRegistry(t *testing.T) {
	assert.Equal(t, L3, Extract(answerFirst, "llama3.3"))
	assert.Equal(t, L3, Extract(answerFirst, "mistral"))
	assert.Equal(t, Unknown, Extract(answerFirst, "deepseek-r1:32b"))

	// Policy selection is an exact match on the identifier.
	assert.Equal(t, L3, Extract(answerFirst, "deepseek-r1:32B"))
}

func TestExtract_Idempotent(t *testing.T) {
	inputs := []string{answerFirst, "Classification: L-1", "", "level 2 then l3."}
	for _, model := range []string{"llama3.3", "deepseek-r1:32b"} {
		for _, in := range inputs {
			first := Extract(in, model)
			for range 5 {
				assert.Equal(t, first, Extract(in, model))
			}
		}
	}
}

func TestRegistry_SetAndFallback(t *testing.T) {
	r := NewRegistry(nil)
	assert.Equal(t, Pattern{}, r.Policy("anything"))

	r.Set("verbose-model", Tail{Statements: 2})
	assert.Equal(t, "tail", r.Policy("verbose-model").Name())
	assert.Equal(t, Unknown, r.Extract(answerFirst, "verbose-model"))
	assert.Equal(t, L3, r.Extract(answerFirst, "other-model"))
}

func TestRegistry_Replace(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, "tail", r.Policy("deepseek-r1:32b").Name())

	policies := map[string]Policy{
		"qwen3:8b": Tail{},
		"mistral":  Pattern{},
	}
	r.Replace(policies)
	delete(policies, "qwen3:8b")

	assert.Equal(t, "tail", r.Policy("qwen3:8b").Name(), "table is copied on replace")
	assert.Equal(t, "pattern", r.Policy("mistral").Name())
	assert.Equal(t, "pattern", r.Policy("deepseek-r1:32b").Name())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := DefaultRegistry()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				r.Replace(map[string]Policy{"deepseek-r1:32b": Tail{}})
				return
			}
			_ = r.Extract(answerFirst, "deepseek-r1:32b")
		}(i)
	}
	wg.Wait()
	assert.Equal(t, Unknown, r.Extract(answerFirst, "deepseek-r1:32b"))
}
