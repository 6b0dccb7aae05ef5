package rules

import (
	"runtime"
	"sort"

	"github.com/github/validate-inputs/pkg/logger"
	"github.com/sourcegraph/conc/pool"
)

var lintLog = logger.New("rules:lint")

// LintResult is the outcome of linting one rule document.
type LintResult struct {
	File   string
	Action string
	Err    error
}

// LintDir parses and schema-validates every rule document in a directory.
// Documents are independent, so they are checked concurrently with a bounded
// pool. Results come back sorted by file name; the error return is reserved
// for failures to enumerate the directory itself.
func LintDir(dir string) ([]LintResult, error) {
	files, err := Files(dir)
	if err != nil {
		return nil, err
	}
	lintLog.Printf("Linting %d rule documents in %s", len(files), dir)

	p := pool.NewWithResults[LintResult]().WithMaxGoroutines(runtime.NumCPU())
	for _, file := range files {
		p.Go(func() LintResult {
			doc, err := LoadFile(file)
			result := LintResult{File: file, Err: err}
			if doc != nil {
				result.Action = doc.Action
			}
			return result
		})
	}
	results := p.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].File < results[j].File
	})
	return results, nil
}
