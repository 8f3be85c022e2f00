// Command treeset-demo exercises package treeset end to end: building two
// sets, combining them, and encoding the result as JSON.
package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/cobalthq/ordtree/treeset"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	evens := treeset.New[int]()
	odds := treeset.New[int]()
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			evens.Add(i)
		} else {
			odds.Add(i)
		}
	}
	logger.Info("built sets", "evens", evens.Len(), "odds", odds.Len())

	all := evens.Union(odds)
	logger.Info("union", "len", all.Len())

	multiplesOfThree := treeset.New[int]()
	for i := 0; i < 20; i += 3 {
		multiplesOfThree.Add(i)
	}
	shared := evens.Intersect(multiplesOfThree)
	logger.Info("evens intersect multiples-of-three", "members", shared.Values())

	data, err := json.Marshal(shared)
	if err != nil {
		logger.Error("marshal failed", "err", err)
		os.Exit(1)
	}
	logger.Info("json", "body", string(data))
}
