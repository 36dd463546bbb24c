// SPDX-License-Identifier: MIT

// Command zagreb analyzes graphs with First Zagreb Index criteria for
// Hamiltonicity and traceability, generates graph families, reports on
// validator network dumps and serves the engine over HTTP.
//
//	zagreb analyze --family petersen --mode exact
//	zagreb analyze --input graph.yaml --output text
//	zagreb generate gossip --n 40 --p 0.1 --m 3 --seed 7 > g.json
//	zagreb report --input dump.json
//	zagreb serve --config zagreb.yaml --addr :9090
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "zagreb:", err)
		stop()
		os.Exit(1)
	}
}
