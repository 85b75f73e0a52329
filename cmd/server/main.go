// Package main implements the entry point for the todo API server, which
// serves a task list over HTTP with a Redis read-through cache in front of
// the relational store.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
