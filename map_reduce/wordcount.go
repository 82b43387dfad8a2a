package map_reduce

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// punctuation is stripped from every token, one character at a time, in this order.
const punctuation = ",:!?.;\n'\" "

type WordCountMapper struct{}

// Map emits (word, 1) for every space-separated token of every line.
// Tokens made only of punctuation still count, as the empty word.
func (m *WordCountMapper) Map(lines []Line) ([]KeyValue, error) {
	var kvs []KeyValue
	lower := cases.Lower(language.Und)
	for _, line := range lines {
		for _, word := range strings.Split(line.Text, " ") {
			kvs = append(kvs, KeyValue{Key: normalize(lower, word), Value: 1})
		}
	}

	return kvs, nil
}

// normalize uses full Unicode lowercasing, so a word-final capital sigma
// becomes ς rather than σ.
func normalize(lower cases.Caser, word string) string {
	for _, p := range punctuation {
		word = strings.ReplaceAll(word, string(p), "")
	}
	return lower.String(word)
}

// Shuffle groups values by key. Groups come out in the order their key was
// first seen.
func Shuffle(kvs []KeyValue) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, kv := range kvs {
		i, ok := index[kv.Key]
		if !ok {
			i = len(groups)
			index[kv.Key] = i
			groups = append(groups, Group{Key: kv.Key})
		}
		groups[i].Values = append(groups[i].Values, kv.Value)
	}

	return groups
}

type WordCountReducer struct{}

func (r *WordCountReducer) Reduce(groups []Group) ([]KeyValue, error) {
	kvs := make([]KeyValue, 0, len(groups))
	for _, g := range groups {
		total := 0
		for _, v := range g.Values {
			total += v
		}
		kvs = append(kvs, KeyValue{Key: g.Key, Value: total})
	}

	return kvs, nil
}
