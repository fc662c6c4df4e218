//go:build (linux || darwin) && (amd64 || arm64)

// SPDX-License-Identifier: MIT
// Package: lvlgrid/cmd/gridbench
//
// highs.go - registers the HiGHS engine where the cgo solver builds.

package main

import (
	"github.com/katalvlaran/lvlgrid/lopf"
	"github.com/katalvlaran/lvlgrid/lopf/highs"
)

func init() {
	backends["highs"] = func() lopf.Backend { return highs.Backend{} }
}
