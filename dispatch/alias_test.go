package dispatch

import (
	"math/rand"
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vaoNames = []string{"BindVertexArray", "BindVertexArrayAPPLE", "BindVertexArrayOES"}

var vaoPairs = Pairs([][]string{vaoNames})

// fakeResolver resolves the listed bare names and nothing else.
func fakeResolver(found map[string]unsafe.Pointer) (Resolver, *[]string) {
	var asked []string
	return func(name string) unsafe.Pointer {
		asked = append(asked, name)
		return found[name]
	}, &asked
}

type cellState struct {
	Loaded bool
	Addr   unsafe.Pointer
}

func snapshot(t *Table) map[string]cellState {
	s := make(map[string]cellState)
	for _, n := range t.Names() {
		s[n] = cellState{Loaded: t.Loaded(n), Addr: t.Addr(n)}
	}
	return s
}

func TestAppleHealsCore(t *testing.T) {
	r, _ := fakeResolver(map[string]unsafe.Pointer{
		"glBindVertexArrayAPPLE": addrOf(&fakeA),
	})
	tbl := LoadWith(r, Options{Names: vaoNames, Aliases: vaoPairs})

	assert.True(t, tbl.Loaded("BindVertexArray"))
	assert.True(t, tbl.Loaded("BindVertexArrayOES"))
	assert.Equal(t, tbl.Addr("BindVertexArrayAPPLE"), tbl.Addr("BindVertexArray"))
	assert.Equal(t, addrOf(&fakeA), tbl.Addr("BindVertexArray"))
	assert.Equal(t, map[string]string{
		"BindVertexArray":    "BindVertexArrayAPPLE",
		"BindVertexArrayOES": "BindVertexArrayAPPLE",
	}, tbl.Healed())
}

func TestAliasSymmetry(t *testing.T) {
	names := []string{"GenQueries", "GenQueriesEXT"}
	pairs := []AliasPair{{A: "GenQueries", B: "GenQueriesEXT"}}

	for _, present := range names {
		t.Run(present, func(t *testing.T) {
			r, _ := fakeResolver(map[string]unsafe.Pointer{"gl" + present: addrOf(&fakeB)})
			tbl := LoadWith(r, Options{Names: names, Aliases: pairs})
			for _, n := range names {
				assert.True(t, tbl.Loaded(n), n)
				assert.Equal(t, addrOf(&fakeB), tbl.Addr(n), n)
			}
		})
	}
}

func TestAliasNeverOverrides(t *testing.T) {
	r, _ := fakeResolver(map[string]unsafe.Pointer{
		"glBindVertexArray":      addrOf(&fakeA),
		"glBindVertexArrayAPPLE": addrOf(&fakeB),
	})
	tbl := LoadWith(r, Options{Names: vaoNames, Aliases: vaoPairs})

	assert.Equal(t, addrOf(&fakeA), tbl.Addr("BindVertexArray"))
	assert.Equal(t, addrOf(&fakeB), tbl.Addr("BindVertexArrayAPPLE"))
	// the OES gap is filled from the core name, which ranks first
	assert.Equal(t, addrOf(&fakeA), tbl.Addr("BindVertexArrayOES"))
	assert.Equal(t, map[string]string{"BindVertexArrayOES": "BindVertexArray"}, tbl.Healed())
}

func TestAliasOrderIndependence(t *testing.T) {
	found := map[string]unsafe.Pointer{
		"glBindVertexArrayAPPLE": addrOf(&fakeA),
		"glBindVertexArrayOES":   addrOf(&fakeB),
		"glGenQueriesEXT":        addrOf(&fakeC),
		"glBeginQueryARB":        addrOf(&fakeA),
		"glEndQuery":             addrOf(&fakeB),
	}
	r, _ := fakeResolver(found)
	want := snapshot(Load(r))

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		pairs := append([]AliasPair(nil), Aliases...)
		rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
		for k := range pairs {
			if rng.Intn(2) == 0 {
				pairs[k].A, pairs[k].B = pairs[k].B, pairs[k].A
			}
		}
		got := snapshot(LoadWith(r, Options{Aliases: pairs}))
		require.Equal(t, want, got, "permutation %d", i)
	}
}

func TestAliasIdempotent(t *testing.T) {
	r, _ := fakeResolver(map[string]unsafe.Pointer{
		"glBindVertexArrayAPPLE": addrOf(&fakeA),
		"glDrawBuffersATI":       addrOf(&fakeB),
		"glDebugMessageCallback": addrOf(&fakeC),
	})
	tbl := Load(r)
	before := snapshot(tbl)
	healed := tbl.Healed()

	assert.Zero(t, tbl.alias(Aliases))
	assert.Equal(t, before, snapshot(tbl))
	assert.Equal(t, healed, tbl.Healed())
}

func TestLoadedTableIsFinal(t *testing.T) {
	r, _ := fakeResolver(map[string]unsafe.Pointer{"glGenQueriesEXT": addrOf(&fakeA)})
	names := []string{"GenQueries", "GenQueriesEXT"}
	tbl := LoadWith(r, Options{Names: names, Aliases: []AliasPair{}})
	require.False(t, tbl.Loaded("GenQueries"))

	// Healing only happens inside LoadWith; nothing exported can rerun it.
	for i := 0; i < reflect.TypeOf(tbl).NumMethod(); i++ {
		m := reflect.TypeOf(tbl).Method(i)
		assert.NotContains(t, m.Name, "Alias", m.Name)
	}
	assert.False(t, tbl.Loaded("GenQueries"))
	assert.Empty(t, tbl.Healed())
	assert.Equal(t, []string{"GenQueries"}, tbl.Missing())
}

func TestAllMissingClassStaysUnloaded(t *testing.T) {
	r, _ := fakeResolver(nil)
	tbl := LoadWith(r, Options{Names: vaoNames, Aliases: vaoPairs})

	for _, n := range vaoNames {
		assert.False(t, tbl.Loaded(n), n)
		assert.Equal(t, TrapAddr(), tbl.Addr(n), n)
		assert.Nil(t, tbl.ProcAddr(n), n)
	}
	assert.Equal(t, []string{"BindVertexArray", "BindVertexArrayAPPLE", "BindVertexArrayOES"}, tbl.Missing())
	assert.Empty(t, tbl.Healed())
}

func TestAliasHealsOpenChains(t *testing.T) {
	names := []string{"X", "Y", "Z"}
	// X-Y and Y-Z only: X must still reach Z's address.
	chain := []AliasPair{{A: "X", B: "Y"}, {A: "Y", B: "Z"}}

	r, _ := fakeResolver(map[string]unsafe.Pointer{"glZ": addrOf(&fakeC)})
	tbl := LoadWith(r, Options{Names: names, Aliases: chain})

	assert.Equal(t, addrOf(&fakeC), tbl.Addr("X"))
	assert.Equal(t, addrOf(&fakeC), tbl.Addr("Y"))
	assert.Equal(t, "Z", tbl.Healed()["X"])
}

func TestInvalidateFallsBackToDiscard(t *testing.T) {
	r, _ := fakeResolver(map[string]unsafe.Pointer{"glDiscardFramebufferEXT": addrOf(&fakeB)})
	tbl := Load(r)

	assert.True(t, tbl.Loaded("InvalidateFramebuffer"))
	assert.Equal(t, addrOf(&fakeB), tbl.Addr("InvalidateFramebuffer"))
	assert.Equal(t, "DiscardFramebufferEXT", tbl.Healed()["InvalidateFramebuffer"])
}

func TestAliasIgnoresUnknownNames(t *testing.T) {
	r, _ := fakeResolver(map[string]unsafe.Pointer{"glNotInTable": addrOf(&fakeA)})
	tbl := LoadWith(r, Options{
		Names:   []string{"BindVertexArray"},
		Aliases: []AliasPair{{A: "BindVertexArray", B: "NotInTable"}},
	})
	assert.False(t, tbl.Loaded("BindVertexArray"))
	assert.False(t, tbl.Has("NotInTable"))
}

func TestClosure(t *testing.T) {
	got := Closure([]AliasPair{{A: "c", B: "b"}, {A: "b", B: "a"}, {A: "x", B: "y"}, {A: "y", B: "x"}, {A: "q", B: "q"}})
	assert.Equal(t, []AliasPair{
		{A: "a", B: "b"},
		{A: "a", B: "c"},
		{A: "b", B: "c"},
		{A: "x", B: "y"},
	}, got)

	assert.Equal(t, []AliasPair{{A: "a", B: "c"}},
		ClosureGaps([]AliasPair{{A: "a", B: "b"}, {A: "c", B: "b"}}))
}

func TestShippedAliasesAreClosed(t *testing.T) {
	assert.Empty(t, ClosureGaps(Aliases))

	seen := make(map[string]bool)
	for _, n := range Registry {
		require.False(t, seen[n], "duplicate registry name %s", n)
		seen[n] = true
	}
	for _, p := range Aliases {
		assert.True(t, seen[p.A], p.A)
		assert.True(t, seen[p.B], p.B)
	}
}

func TestPairs(t *testing.T) {
	assert.Equal(t, []AliasPair{
		{A: "a", B: "b"},
		{A: "a", B: "c"},
		{A: "b", B: "c"},
	}, Pairs([][]string{{"a", "b", "c"}, {"solo"}}))
}
