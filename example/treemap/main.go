// Command treemap-demo exercises package treemap's ordered and
// insertion-order iteration side by side.
package main

import (
	"log/slog"
	"os"

	"github.com/cobalthq/ordtree/treemap"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	m := treemap.NewOrdered[string, int]()
	for _, entry := range []struct {
		key string
		val int
	}{
		{"zebra", 1},
		{"apple", 2},
		{"mango", 3},
	} {
		m.Put(entry.key, entry.val)
	}

	logger.Info("key order", "keys", m.Keys())

	var insertionOrder []string
	for k := range m.InsertionOrder() {
		insertionOrder = append(insertionOrder, k)
	}
	logger.Info("insertion order", "keys", insertionOrder)

	if k, v, ok := m.Floor("mondo"); ok {
		logger.Info("floor(mondo)", "key", k, "value", v)
	}
}
