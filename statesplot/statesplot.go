/*
 * statesplot.go, part of gostates.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * Gostates is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

// Package statesplot plots sums and densities of states against energy, as PNG files.
package statesplot

import (
	"fmt"
	"image/color"

	states "github.com/rmera/gostates"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicStatesPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Energy (cm-1)"
	p.Y.Label.Text = ylabel
	//Sums and densities of states span many orders of magnitude.
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())
	return p
}

// counter returns the counting method of M selected by name.
func counter(M *states.Molecule, name string) (func() (float64, float64, error), error) {
	switch name {
	case "classical":
		return M.Classical, nil
	case "marcus-rice":
		return M.MarcusRice, nil
	case "whitten-rabinovitch":
		return M.WhittenRabinovitch, nil
	}
	return nil, fmt.Errorf("goStates/statesplot: unknown counter %q, want classical, marcus-rice or whitten-rabinovitch", name)
}

// CurvePlot sweeps the total energy of mol over [emin, emax] (cm-1) in the given
// number of points, counts states at each energy with the named counter
// ("classical", "marcus-rice" or "whitten-rabinovitch") and saves a log-scale
// plot of the sum and density of states to plotname + ".png". Energies a counter
// rejects (below threshold, or outside the Whitten-Rabinovitch domain) are
// skipped, not plotted as zeros; if every point is rejected, an error is returned.
func CurvePlot(mol *states.Molecule, emin, emax float64, points int, name, title, plotname string) error {
	if mol == nil {
		panic("goStates/statesplot: nil molecule given to CurvePlot")
	}
	if points < 2 || emax <= emin {
		return fmt.Errorf("goStates/statesplot: need at least 2 points and emax > emin, got %d points over [%g, %g]", points, emin, emax)
	}
	sums := make(plotter.XYs, 0, points)
	denss := make(plotter.XYs, 0, points)
	for i := 0; i < points; i++ {
		E := emin + (emax-emin)*float64(i)/float64(points-1)
		count, err := counter(mol.WithEnergy(E), name)
		if err != nil {
			return err
		}
		s, d, err := count()
		if err != nil {
			continue
		}
		sums = append(sums, plotter.XY{X: E, Y: s})
		denss = append(denss, plotter.XY{X: E, Y: d})
	}
	if len(sums) == 0 {
		return fmt.Errorf("goStates/statesplot: counter %s rejected every energy in [%g, %g]", name, emin, emax)
	}
	p := basicStatesPlot(title, "States / states per cm-1")
	ls, err := plotter.NewLine(sums)
	if err != nil {
		return err
	}
	ls.Color = color.RGBA{R: 255, A: 255}
	ld, err := plotter.NewLine(denss)
	if err != nil {
		return err
	}
	ld.Color = color.RGBA{B: 255, A: 255}
	p.Add(ls, ld)
	p.Legend.Add("sum of states", ls)
	p.Legend.Add("density of states", ld)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}

// TablePlot saves a log-scale plot of the degeneracies in the grain table G, up
// to the energy upto (cm-1), to plotname + ".png". Cells with zero degeneracy
// are skipped, as a log axis cannot show them.
func TablePlot(G *states.GrainTable, upto float64, title, plotname string) error {
	if G == nil {
		panic("goStates/statesplot: nil grain table given to TablePlot")
	}
	n := int(upto / G.Grain())
	if n >= G.Len() {
		n = G.Len() - 1
	}
	pts := make(plotter.XYs, 0, n+1)
	for i := 0; i <= n; i++ {
		if d := G.Degeneracy(i); d > 0 {
			pts = append(pts, plotter.XY{X: float64(i) * G.Grain(), Y: d})
		}
	}
	if len(pts) == 0 {
		return fmt.Errorf("goStates/statesplot: no populated cells below %g cm-1", upto)
	}
	p := basicStatesPlot(title, "Degeneracy (states per grain)")
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.Color = color.RGBA{G: 155, A: 255}
	p.Add(l)
	p.Legend.Add("state count per grain", l)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}
