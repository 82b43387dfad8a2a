package map_reduce

import (
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/google/uuid"
)

type Runner struct {
	mapper  Mapper
	reducer Reducer
	logger  *log.Logger
	lastRun string
}

func NewRunner(m Mapper, r Reducer) *Runner {
	return &Runner{
		mapper:  m,
		reducer: r,
		logger:  log.New(io.Discard, "", 0),
	}
}

// SetLogger routes progress messages to l. A nil logger silences them.
func (r *Runner) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	r.logger = l
}

// LastRunID returns the ID of the most recent Run, or "" before the first one.
func (r *Runner) LastRunID() string {
	return r.lastRun
}

// Run maps lines, shuffles the pairs, sorts the groups by key and reduces
// them. The result is sorted by key.
func (r *Runner) Run(lines []Line) ([]KeyValue, error) {
	runID := uuid.NewString()
	r.lastRun = runID
	r.logger.Printf("run %s: mapping %d lines", runID, len(lines))

	mappedKVs, err := r.mapper.Map(lines)
	if err != nil {
		return nil, fmt.Errorf("run %s: mapping error: %w", runID, err)
	}

	groups := Shuffle(mappedKVs)
	r.logger.Printf("run %s: shuffled %d pairs into %d keys", runID, len(mappedKVs), len(groups))

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})

	results, err := r.reducer.Reduce(groups)
	if err != nil {
		return nil, fmt.Errorf("run %s: reduce error: %w", runID, err)
	}
	r.logger.Printf("run %s: reduced %d keys", runID, len(results))

	return results, nil
}

// RunFile reads path line by line and runs the pipeline over it.
func (r *Runner) RunFile(path string) ([]KeyValue, error) {
	lines, err := ReadLinesFile(path)
	if err != nil {
		return nil, err
	}
	r.logger.Printf("read %d lines from %s", len(lines), path)

	return r.Run(lines)
}
