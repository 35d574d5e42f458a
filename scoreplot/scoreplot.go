/*
 * scoreplot.go, part of fftrim.
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

/*Package scoreplot draws force-field coverage scores as bar charts,
using the gonum plotting library.*/
package scoreplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/fftrim"
)

// Bars plots a coverage score as one bar per document section, between 0
// and 1, and saves it to plotname plus the .png extension. Sections
// absent from the score (empty in the document) are not drawn.
func Bars(sc *fftrim.Score, title, plotname string) error {
	labels := []string{"types"}
	values := plotter.Values{sc.Types}
	names := map[fftrim.Kind]string{
		fftrim.Bond:     "bonds",
		fftrim.Angle:    "angles",
		fftrim.Proper:   "propers",
		fftrim.Improper: "impropers",
	}
	for _, k := range fftrim.Kinds {
		if v, ok := sc.Sections[k]; ok {
			labels = append(labels, names[k])
			values = append(values, v)
		}
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.Y.Label.Text = "Coverage"
	p.Y.Min = 0
	p.Y.Max = 1
	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 60, G: 120, B: 180, A: 255}
	p.Add(bars)
	p.NominalX(labels...)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}
