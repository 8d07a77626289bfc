package schema

import (
	"sync"
	"testing"

	"github.com/signadot/qmlon/ir"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(nil); err == nil {
		t.Error("nil schema registered")
	}
	if err := r.Register(&Schema{}); err == nil {
		t.Error("schema without root registered")
	}
	s := mustSchema(t, spriteSchema)
	if err := r.Register(s); err != nil {
		t.Fatal(err)
	}
	if r.Lookup("Sprite") != s || r.Lookup("Other") != nil {
		t.Error("lookup")
	}
	all := r.All()
	delete(all, "Sprite")
	if r.Len() != 1 {
		t.Error("All must return a copy")
	}
}

func TestConcurrentValidate(t *testing.T) {
	s := mustSchema(t, spriteSchema)
	good := mustDoc(t, spriteDoc)
	bad := ir.FromObject(ir.NewObject("Sprite").Set("id", ir.FromString("x")))
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, want := good, true
			if i%2 == 1 {
				doc, want = bad, false
			}
			for range 50 {
				if s.Validate(doc) != want {
					t.Errorf("goroutine %d: got %v", i, !want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
