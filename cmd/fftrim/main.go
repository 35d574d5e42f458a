/*
 * main.go, part of fftrim.
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// fftrim trims a force-field XML document down to the parameters one
// atom-typed structure actually uses, or scores how much of a document a
// structure exercises.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmera/fftrim"
	"github.com/rmera/fftrim/ffxml"
	"github.com/rmera/fftrim/scoreplot"
)

var (
	structureFile string
	forcefield    string
	output        string
	dialectFile   string
	plotName      string
)

func dialect() (fftrim.Dialect, error) {
	if dialectFile == "" {
		return fftrim.DefaultDialect(), nil
	}
	return ffxml.ReadDialect(dialectFile)
}

func loadInputs() (*fftrim.Structure, *fftrim.Document, fftrim.Dialect, error) {
	d, err := dialect()
	if err != nil {
		return nil, nil, d, err
	}
	mol, err := fftrim.ReadStructureFile(structureFile)
	if err != nil {
		return nil, nil, d, err
	}
	doc, err := ffxml.ReadFile(forcefield)
	if err != nil {
		return nil, nil, d, err
	}
	return mol, doc, d, nil
}

var trimCmd = &cobra.Command{
	Use:   "trim",
	Short: "Write the subset of a force-field document used by a structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		mol, doc, d, err := loadInputs()
		if err != nil {
			return err
		}
		trimmed, report, err := fftrim.Trim(mol, doc, d)
		if err != nil {
			return err
		}
		for _, n := range report.Notes {
			slog.Info(n)
		}
		for k, tuples := range report.Unmatched {
			for _, t := range tuples {
				slog.Warn("no parameter record matches interaction", "kind", k.String(), "atoms", t)
			}
		}
		if err := ffxml.WriteFile(trimmed, output); err != nil {
			return err
		}
		slog.Info("wrote trimmed force field", "file", output, "unmatched", report.UnmatchedCount())
		return nil
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Report how much of a force-field document a structure exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		mol, doc, d, err := loadInputs()
		if err != nil {
			return err
		}
		sc, err := fftrim.ScoreDocument(mol, doc, d)
		if err != nil {
			return err
		}
		fmt.Printf("atom types: %.3f\n", sc.Types)
		for _, k := range fftrim.Kinds {
			if v, ok := sc.Sections[k]; ok {
				fmt.Printf("%s: %.3f\n", d.Sections[k], v)
			}
		}
		fmt.Printf("overall: %.3f\n", sc.Overall)
		if plotName != "" {
			if err := scoreplot.Bars(sc, "Force-field coverage", plotName); err != nil {
				return err
			}
			slog.Info("wrote coverage plot", "file", plotName+".png")
		}
		return nil
	},
}

var rootCmd = &cobra.Command{
	Use:           "fftrim",
	Short:         "Trim a force-field document to the parameters a typed structure uses",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&structureFile, "structure", "s", "", "typed structure (JSON)")
	rootCmd.PersistentFlags().StringVarP(&forcefield, "forcefield", "f", "", "force-field XML file (.xml or .xml.gz)")
	rootCmd.PersistentFlags().StringVarP(&dialectFile, "dialect", "d", "", "optional TOML dialect file")
	rootCmd.MarkPersistentFlagRequired("structure")
	rootCmd.MarkPersistentFlagRequired("forcefield")

	trimCmd.Flags().StringVarP(&output, "output", "o", "", "output file (.xml or .xml.gz)")
	trimCmd.MarkFlagRequired("output")
	scoreCmd.Flags().StringVar(&plotName, "plot", "", "write a coverage bar chart to this name plus .png")

	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(scoreCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
