package map_reduce

// Line is one line of the input file. Index is 0-based.
type Line struct {
	Text  string
	Index int
}

type KeyValue struct {
	Key   string
	Value int
}

// Group holds every value emitted for Key, in the order they were seen.
type Group struct {
	Key    string
	Values []int
}

type Mapper interface {
	Map(lines []Line) ([]KeyValue, error)
}

type Reducer interface {
	Reduce(groups []Group) ([]KeyValue, error)
}
