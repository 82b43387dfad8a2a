package map_reduce

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWordCountMapper(t *testing.T) {
	m := &WordCountMapper{}

	tests := []struct {
		name  string
		lines []Line
		want  []KeyValue
	}{
		{
			name:  "plain words",
			lines: []Line{{Index: 0, Text: "the quick brown fox"}},
			want: []KeyValue{
				{"the", 1},
				{"quick", 1},
				{"brown", 1},
				{"fox", 1},
			},
		},
		{
			name: "case and punctuation",
			lines: []Line{
				{Index: 0, Text: "Hello, world!"},
				{Index: 1, Text: "hello world"},
			},
			want: []KeyValue{
				{"hello", 1},
				{"world", 1},
				{"hello", 1},
				{"world", 1},
			},
		},
		{
			name:  "quotes and inner punctuation",
			lines: []Line{{Index: 0, Text: `"Don't" stop; e.g.`}},
			want: []KeyValue{
				{"dont", 1},
				{"stop", 1},
				{"eg", 1},
			},
		},
		{
			name:  "tabs and parentheses are kept",
			lines: []Line{{Index: 0, Text: "(a)\tb"}},
			want:  []KeyValue{{"(a)\tb", 1}},
		},
		{
			name:  "greek final sigma",
			lines: []Line{{Index: 0, Text: "ΟΔΟΣ ΣΟΦΟΣ."}},
			want: []KeyValue{
				{"οδος", 1},
				{"σοφος", 1},
			},
		},
		{
			name:  "pure punctuation becomes the empty word",
			lines: []Line{{Index: 0, Text: "!!!"}},
			want:  []KeyValue{{"", 1}},
		},
		{
			name:  "double space yields an empty token",
			lines: []Line{{Index: 0, Text: "a  b"}},
			want: []KeyValue{
				{"a", 1},
				{"", 1},
				{"b", 1},
			},
		},
		{
			name:  "empty line yields one empty token",
			lines: []Line{{Index: 0, Text: ""}},
			want:  []KeyValue{{"", 1}},
		},
		{
			name:  "no lines",
			lines: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Map(tt.lines)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestShuffle(t *testing.T) {
	got := Shuffle([]KeyValue{{"a", 1}, {"b", 1}, {"a", 1}})
	require.Equal(t, []Group{
		{Key: "a", Values: []int{1, 1}},
		{Key: "b", Values: []int{1}},
	}, got)
}

func TestShuffleKeepsFirstSeenOrder(t *testing.T) {
	got := Shuffle([]KeyValue{{"zeta", 1}, {"alpha", 2}, {"zeta", 3}, {"mid", 1}, {"alpha", 4}})
	require.Equal(t, []Group{
		{Key: "zeta", Values: []int{1, 3}},
		{Key: "alpha", Values: []int{2, 4}},
		{Key: "mid", Values: []int{1}},
	}, got)
}

func TestShuffleConservesPairs(t *testing.T) {
	m := &WordCountMapper{}
	kvs, err := m.Map([]Line{
		{Index: 0, Text: "one two two three three three"},
		{Index: 1, Text: "Three, two... one!"},
	})
	require.NoError(t, err)

	want := make(map[string]int)
	for _, kv := range kvs {
		want[kv.Key] += kv.Value
	}

	got := make(map[string]int)
	n := 0
	for _, g := range Shuffle(kvs) {
		for _, v := range g.Values {
			got[g.Key] += v
			n++
		}
	}
	require.Equal(t, len(kvs), n)
	require.Equal(t, want, got)
}

func TestWordCountReducer(t *testing.T) {
	r := &WordCountReducer{}

	tests := []struct {
		name   string
		groups []Group
		want   []KeyValue
	}{
		{
			name: "sums each group in order",
			groups: []Group{
				{Key: "a", Values: []int{1, 1}},
				{Key: "b", Values: []int{1}},
			},
			want: []KeyValue{{"a", 2}, {"b", 1}},
		},
		{
			name:   "empty values sum to zero",
			groups: []Group{{Key: "fox"}},
			want:   []KeyValue{{"fox", 0}},
		},
		{
			name:   "values other than one",
			groups: []Group{{Key: "the", Values: []int{2, 3, 5}}},
			want:   []KeyValue{{"the", 10}},
		},
		{
			name:   "no groups",
			groups: nil,
			want:   []KeyValue{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Reduce(tt.groups)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
