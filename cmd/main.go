package main // import "optics"

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/edp1096/toy-optics/pkg/catalog"
	"github.com/edp1096/toy-optics/pkg/dispersion"
	"github.com/edp1096/toy-optics/pkg/material"
	"github.com/edp1096/toy-optics/pkg/sweep"
	"github.com/edp1096/toy-optics/pkg/util"
	"github.com/edp1096/toy-optics/pkg/wavelength"
)

var (
	materialName = flag.String("m", "sio2", "material name: "+strings.Join(material.Names(), ", "))
	axisName     = flag.String("axis", "", "crystal axis or chalcogenide compound")
	temperature  = flag.Float64("temp", material.DefaultTemperatureC, "crystal temperature [C]")
	filePath     = flag.String("file", "", "CSV index table file, overrides -m")
	fileMode     = flag.Int("mode", 0, "mode column of the -file table")
	catalogPage  = flag.String("page", "", "refractiveindex.info page, overrides -m and -file")
	pointWl      = flag.Float64("wl", 1550, "wavelength for the point report (nm, um or m)")
	sweepStart   = flag.Float64("start", 0, "sweep start wavelength [nm]")
	sweepStop    = flag.Float64("stop", 0, "sweep stop wavelength [nm]")
	sweepPoints  = flag.Int("points", 11, "sweep point count")
	sweepScale   = flag.String("scale", "LIN", "sweep spacing: LIN, DEC or OCT")
	plotPath     = flag.String("plot", "", "write an index plot PNG of the sweep")
)

func buildMaterial() *dispersion.Material {
	if *catalogPage != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		m, err := catalog.NewClient().Material(ctx, *catalogPage)
		if err != nil {
			log.Fatalf("Error loading catalog page: %v", err)
		}
		return m
	}
	if *filePath != "" {
		m, err := material.NewFile(*filePath, *fileMode)
		if err != nil {
			log.Fatalf("Error loading index table: %v", err)
		}
		return m
	}
	m, err := material.Create(*materialName, *axisName, *temperature)
	if err != nil {
		log.Fatalf("Error creating material: %v", err)
	}
	return m
}

func printPointReport(m *dispersion.Material) {
	minNm, maxNm := m.WavelengthRange()
	nm, err := wavelength.Normalize(*pointWl, minNm, maxNm)
	if err != nil {
		log.Fatalf("Error normalizing wavelength: %v", err)
	}

	check := func(v float64, err error) float64 {
		if err != nil {
			log.Fatalf("Error computing dispersion: %v", err)
		}
		return v
	}

	fmt.Printf("Wavelength: %s (valid %s - %s)\n",
		util.FormatWavelength(nm), util.FormatWavelength(minNm), util.FormatWavelength(maxNm))
	fmt.Println("--------------------------------")
	fmt.Printf("n       = %s\n", util.FormatIndex(check(m.Index(nm))))
	fmt.Printf("dn/dl   = %s\n", util.FormatValueFactor(check(m.IndexDeriv1(nm)), "/m"))
	fmt.Printf("d2n/dl2 = %s\n", util.FormatValueFactor(check(m.IndexDeriv2(nm)), "/m^2"))
	fmt.Printf("ng      = %s\n", util.FormatIndex(check(m.GroupIndex(nm))))
	fmt.Printf("vg      = %s\n", util.FormatValueFactor(check(m.GroupVelocity(nm)), "m/s"))
	fmt.Printf("GVD     = %s\n", util.FormatGVD(check(m.GVD(nm))))
	fmt.Printf("beta0   = %s\n", util.FormatValueFactor(check(m.Beta0(nm)), "/m"))
	fmt.Printf("beta1   = %s\n", util.FormatValueFactor(check(m.Beta1(nm)), "s/m"))
	fmt.Printf("Z       = %s\n", util.FormatValueFactor(check(m.WaveImpedance(nm)), "Ohm"))
}

func printSweepResults(s *sweep.Sweep) {
	results := s.GetResults()
	wls := s.Wavelengths()

	fmt.Printf("Sweep Results (%d wavelength points):\n", len(wls))
	fmt.Println("Wavelength   n         ng        vg           GVD             beta1        Z")
	fmt.Println("--------------------------------------------------------------------------------")
	for i := range wls {
		fmt.Printf("%-12s %-9s %-9s %-12s %-15s %-12s %s\n",
			util.FormatWavelength(wls[i]),
			util.FormatIndex(results[sweep.KeyIndex][i]),
			util.FormatIndex(results[sweep.KeyGroupIndex][i]),
			util.FormatValueFactor(results[sweep.KeyGroupVelocity][i], "m/s"),
			util.FormatGVD(results[sweep.KeyGVD][i]),
			util.FormatValueFactor(results[sweep.KeyBeta1][i], "s/m"),
			util.FormatValueFactor(results[sweep.KeyImpedance][i], "Ohm"))
	}
}

func plotSweepResults(s *sweep.Sweep, path string) error {
	results := s.GetResults()
	wls := s.Wavelengths()

	nPts := make(plotter.XYs, len(wls))
	ngPts := make(plotter.XYs, len(wls))
	for i, wl := range wls {
		nPts[i] = plotter.XY{X: wl, Y: results[sweep.KeyIndex][i]}
		ngPts[i] = plotter.XY{X: wl, Y: results[sweep.KeyGroupIndex][i]}
	}

	p := plot.New()
	p.Title.Text = "Refractive index"
	p.X.Label.Text = "wavelength [nm]"
	p.Y.Label.Text = "index"
	if err := plotutil.AddLinePoints(p, "n", nPts, "ng", ngPts); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func main() {
	flag.Parse()

	m := buildMaterial()

	if *sweepStart <= 0 || *sweepStop <= 0 {
		if *plotPath != "" {
			log.Fatal("Plot needs -start and -stop")
		}
		printPointReport(m)
		return
	}

	s := sweep.New(*sweepStart, *sweepStop, *sweepPoints, strings.ToUpper(*sweepScale))
	if err := s.Run(m); err != nil {
		log.Fatalf("Sweep failed: %v", err)
	}
	printSweepResults(s)

	if *plotPath != "" {
		if err := plotSweepResults(s, *plotPath); err != nil {
			log.Fatalf("Plot failed: %v", err)
		}
		fmt.Printf("\nPlot written to %s\n", *plotPath)
	}
}
