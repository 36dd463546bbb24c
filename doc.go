// Package zagreb analyzes simple undirected graphs with the First Zagreb
// index Z1 = Σ deg(v)² and the Zagreb-index sufficient conditions for
// Hamiltonicity and traceability.
//
// What is in the box?
//
//	A synchronous, allocation-light engine that brings together:
//		• Graph store: int-indexed simple graph with strict insertion rules (core)
//		• Degree statistics: Z1, δ, Δ, handshake-consistent edge count (core)
//		• Vertex connectivity: approximate, exact (Menger/Dinic), exhaustive (connectivity)
//		• Classifier: likely-Hamiltonian and likely-traceable verdicts (this package)
//		• Independence approximation: greedy minimum-degree (independence)
//		• Generators: deterministic and seeded random families (builder)
//
// Verdicts are sufficient-condition based: true means a theorem or a known
// family proves the property; false means "not shown", never "disproved".
//
// Under the hood the module is organized as:
//
//	core/          — Graph, insertion sentinels, degree statistics
//	bfs/           — traversal, connectivity with vertex removal, components
//	flow/          — int-indexed residual network, Dinic, Edmonds–Karp
//	dfs/           — cut vertices and bridges
//	connectivity/  — Mode, IsKConnected, VertexConnectivity, LocalConnectivity
//	independence/  — greedy independent set
//	builder/       — graph families (Complete, Cycle, Petersen, Sharded, ...)
//	graphio/       — JSON/YAML graph documents and network dumps
//	network/       — validator-network report
//	internal/      — config, zap logging, HTTP server (mux, prometheus)
//	cmd/zagreb     — CLI (analyze, generate, report, serve, families)
//
// Quick example (Petersen graph):
//
//	g, _ := builder.NewPetersen()
//	res := zagreb.Analyze(g, zagreb.WithMode(connectivity.ModeExact))
//	// res.ZagrebIndex == 90, res.IsLikelyHamiltonian == false
//
// Theorems used (n vertices, e edges, minimum degree δ, maximum degree Δ):
//
//	1. k-connected, k ≥ 2, n ≥ 3:
//	   Z1 ≥ (n−k−1)Δ² + e²/(k+1) + (√(n−k−1) − √δ)²·e  ⇒  Hamiltonian
//	2. k-connected, k ≥ 1, n ≥ 9:
//	   Z1 ≥ (n−k−2)Δ² + e²/(k+2) + (√(n−k−2) − √δ)²·e  ⇒  traceable
//	3. independence number β:
//	   Z1 ≤ (n−β)Δ² + e²/β + (√(n−β) − √δ)²·e
package zagreb
