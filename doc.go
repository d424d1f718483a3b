// Package snailshell computes snail shell (clockwise spiral) traversals of
// square matrices, synchronously or through a worker pool.
//
// 🚀 What is snailshell?
//
//	A small, dependency-light library built around one pure function,
//	spiral.Traverse, plus the plumbing to run it off the caller's goroutine:
//		• spiral/   — the traversal, its coordinate walk and its inverse (Fill)
//		• matrix/   — a generic row-major Dense container and shape validators
//		• executor/ — bounded worker pool, one-shot futures, explicit lifecycle
//		• Shell     — submits traversals to an executor and hands back futures
//
// Quick ASCII example:
//
//	1 → 2 → 3
//	        ↓
//	8 → 9   4     ⇒  [1 2 3 4 5 6 7 8 9]
//	↑       ↓
//	7 ← 6 ← 5
//
// Usage:
//
//	sh, err := snailshell.New(executor.DefaultOptions())
//	defer sh.Close()
//	f, err := snailshell.Submit(ctx, sh, [][]int{{1, 2}, {4, 3}})
//	seq, err := f.WaitTimeout(10 * time.Second) // [1 2 3 4]
//
// Non-square input is rejected by Submit itself, before anything is queued.
//
//	go get github.com/katalvlaran/snailshell
package snailshell
