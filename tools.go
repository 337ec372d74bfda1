//go:build tools

// Package main pins the tools invoked through go generate (mockgen) as module dependencies.
package main

import (
	_ "go.uber.org/mock/mockgen"
)
