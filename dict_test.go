package trie

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDict(t *testing.T) {
	d := DictOf([]Entry[int]{{"test", 2}, {"test2", 3}})

	assert.True(t, d.Contains("test2"))
	assert.True(t, d.Contains("test"))
	assert.False(t, d.Contains("test3"))
	assert.Equal(t, 2, d.Len())

	_, err := d.Get("test3")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	prefix, rest, v, ok := d.LongestPrefix("test4")
	assert.Equal(t, "test", prefix)
	assert.Equal(t, "4", rest)
	assert.Equal(t, 2, v)
	assert.True(t, ok)

	d.Set("hello there", 4)
	assert.True(t, d.Contains("hello there"))
	assert.Equal(t, 3, d.Len())
	require.NoError(t, d.Delete("hello there"))
	assert.False(t, d.Contains("hello there"))
	assert.Equal(t, 2, d.Len())

	assert.Equal(t, []string{"test", "test2"}, collect(d.Iterator()))
	assert.Equal(t, `trie.Dict{"test": 2, "test2": 3}`, d.String())
}

func TestDictOfOverwrites(t *testing.T) {
	d := DictOf([]Entry[string]{{"k", "first"}, {"j", "x"}, {"k", "second"}})

	v, err := d.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "second", v)
	assert.Equal(t, 2, d.Len())
}

func TestDictFromMap(t *testing.T) {
	m := map[string]int{"a": 1, "ab": 2, "b": 3}
	d := DictFromMap(m)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, m, maps.Collect(d.All()))
}

func TestDictSetOverwrite(t *testing.T) {
	d := NewDict[string]()
	d.Set("key", "a")
	d.Set("key", "b")

	v, err := d.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, 1, d.Len())
}

func TestDictEmptyKey(t *testing.T) {
	d := NewDict[int]()
	d.Set("", 7)

	v, err := d.Get("")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	prefix, rest, v, ok := d.LongestPrefix("anything")
	assert.Equal(t, "", prefix)
	assert.Equal(t, "anything", rest)
	assert.Equal(t, 7, v)
	assert.True(t, ok)

	d.Set("any", 8)
	prefix, rest, v, ok = d.LongestPrefix("anything")
	assert.Equal(t, "any", prefix)
	assert.Equal(t, "thing", rest)
	assert.Equal(t, 8, v)
	assert.True(t, ok)
}

func TestDictLongestPrefixNoMatch(t *testing.T) {
	d := DictOf([]Entry[int]{{"abc", 1}})

	prefix, rest, v, ok := d.LongestPrefix("abd")
	assert.Equal(t, "", prefix)
	assert.Equal(t, "abd", rest)
	assert.Equal(t, 0, v)
	assert.False(t, ok)

	prefix, rest, _, ok = d.LongestPrefix("")
	assert.Equal(t, "", prefix)
	assert.Equal(t, "", rest)
	assert.False(t, ok)
}

func TestDictDeleteMissing(t *testing.T) {
	d := DictOf([]Entry[int]{{"a", 1}, {"abc", 2}})

	err := d.Delete("ab")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.EqualError(t, err, `key not found: "ab"`)
	assert.Equal(t, 2, d.Len())
	assert.True(t, d.Contains("a"))
	assert.True(t, d.Contains("abc"))
}

func TestDictKeysValues(t *testing.T) {
	d := DictOf([]Entry[int]{{"test", 2}, {"test2", 3}})

	var keys []string
	for k := range d.Keys() {
		keys = append(keys, k)
	}
	var values []int
	for v := range d.Values() {
		values = append(values, v)
	}
	assert.Equal(t, []string{"test", "test2"}, keys)
	assert.Equal(t, []int{2, 3}, values)

	// early break
	for k := range d.Keys() {
		assert.Equal(t, "test", k)
		break
	}
}

func TestDictIteratorWithPrefix(t *testing.T) {
	d := DictOf([]Entry[int]{{"api", 1}, {"api.foo", 2}, {"abc", 3}})

	assert.Equal(t, []string{"api", "api.foo"}, collect(d.IteratorWithPrefix("ap")))
	assert.Empty(t, collect(d.IteratorWithPrefix("b")))
	assert.True(t, d.HasPrefix("api."))
	assert.False(t, d.HasPrefix("api.bar"))
}

func TestDictClear(t *testing.T) {
	d := DictOf([]Entry[int]{{"a", 1}, {"b", 2}}, WithLogger(testr.New(t)))
	d.Clear()

	assert.Equal(t, 0, d.Len())
	assert.False(t, d.Contains("a"))
	assert.Equal(t, "trie.Dict{}", d.String())
}

func TestDictChurn(t *testing.T) {
	for _, opts := range [][]Option{
		nil,
		{WithPruning()},
		{WithOrder(LexicalOrder), WithPruning()},
	} {
		rnd := rand.New(rand.NewPCG(1, 2))
		d := NewDict[int](opts...)
		ref := map[string]int{}

		key := func() string {
			return fmt.Sprintf("%x", rnd.IntN(512))
		}

		for i := 0; i < 5000; i++ {
			k := key()
			if rnd.IntN(3) == 0 {
				err := d.Delete(k)
				if _, ok := ref[k]; ok {
					assert.NoError(t, err)
					delete(ref, k)
				} else {
					assert.ErrorIs(t, err, ErrKeyNotFound)
				}
				continue
			}
			d.Set(k, i)
			ref[k] = i
		}

		assert.Equal(t, len(ref), d.Len())
		if diff := cmp.Diff(ref, maps.Collect(d.All())); diff != "" {
			t.Errorf("contents mismatch (-want +got):\n%s", diff)
		}
		for k, v := range ref {
			got, err := d.Get(k)
			assert.NoError(t, err)
			assert.Equal(t, v, got)
		}

		for k := range ref {
			require.NoError(t, d.Delete(k))
		}
		assert.Equal(t, 0, d.Len())
		assert.False(t, d.Iterator().HasNext())
		if d.t.prune {
			assert.Equal(t, 0, d.t.root.numChildren())
		}
	}
}
