package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gocontour/internal/logger"
	"github.com/philipparndt/gocontour/pkg/mesh"
	"github.com/philipparndt/gocontour/pkg/solid"
	"github.com/philipparndt/gocontour/pkg/stl"
)

var (
	solidOut   string
	solidSize  float64
	solidCells int
)

var solidCmd = &cobra.Command{
	Use:   "solid <" + strings.Join(append(solid.Kinds(), "hill"), "|") + ">",
	Short: "Write a generated test mesh as binary STL",
	Long: `Generate a closed solid with marching cubes, or a hill shaped height grid,
and store it as STL. Useful to try contour extraction without a model at hand.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: append(solid.Kinds(), "hill"),
	RunE:      runSolid,
}

func init() {
	rootCmd.AddCommand(solidCmd)

	solidCmd.Flags().StringVarP(&solidOut, "out", "o", "", "Output STL file")
	solidCmd.Flags().Float64VarP(&solidSize, "size", "s", 10, "Characteristic size of the solid")
	solidCmd.Flags().IntVar(&solidCells, "cells", solid.DefaultCells, "Tessellation resolution")
	_ = solidCmd.MarkFlagRequired("out")
}

func runSolid(cmd *cobra.Command, args []string) error {
	kind := args[0]

	m, err := generate(kind, solidSize, solidCells)
	if err != nil {
		return err
	}

	if err := stl.WriteFile(solidOut, stl.FromMesh(m)); err != nil {
		return err
	}

	logger.Named("solid").Debug("solid written",
		zap.String("kind", kind),
		zap.Int("triangles", m.TriangleCount()),
		zap.String("file", solidOut),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s with %d triangles to %s\n", kind, m.TriangleCount(), solidOut)
	return nil
}

func generate(kind string, size float64, cells int) (*mesh.Mesh, error) {
	if kind == "hill" {
		return hill(size, cells)
	}

	s, err := solid.New(kind, size)
	if err != nil {
		return nil, err
	}
	return s.ToMesh(cells)
}

// hill builds a terrain grid with a single bell shaped peak of height size
func hill(size float64, cells int) (*mesh.Mesh, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("hill size must be positive, got %g", size)
	}
	sigma := size / 2
	m, err := mesh.Grid(mesh.GridOptions{
		Width:     size * 4,
		Depth:     size * 4,
		SegmentsX: cells,
		SegmentsZ: cells,
	}, func(x, z float64) float64 {
		return size * math.Exp(-(x*x+z*z)/(2*sigma*sigma))
	})
	if err != nil {
		return nil, err
	}
	m.Name = "hill"
	return m, nil
}
