package main

import (
	"FolioScale/gradient"
	"FolioScale/scale"
	"flag"

	"github.com/BrugadaSyndrome/bslogger"
)

var (
	endA, endB, endL, startA, startB, startL     float64
	bandHeight, bandWidth, steps                 int
	catalogFile, runName, savePath, settingsFile string
	verbose                                      bool
)

func parseArguments() {
	flag.StringVar(&settingsFile, "settingsFile", "", "Json file with scale settings (overrides the other flags)")

	flag.Float64Var(&startL, "startL", 33.0, "L* value of the start color")
	flag.Float64Var(&startA, "startA", 0.0, "a* value of the start color")
	flag.Float64Var(&startB, "startB", 0.0, "b* value of the start color")
	flag.Float64Var(&endL, "endL", 93.0, "L* value of the end color")
	flag.Float64Var(&endA, "endA", 0.0, "a* value of the end color")
	flag.Float64Var(&endB, "endB", 0.0, "b* value of the end color")
	flag.IntVar(&steps, "steps", 10, "Number of swatches to generate")

	flag.StringVar(&catalogFile, "catalogFile", "", "Json file with named catalog colors to match against")
	flag.IntVar(&bandHeight, "bandHeight", 90, "Height of each swatch band in pixels")
	flag.IntVar(&bandWidth, "bandWidth", 360, "Width of each swatch band in pixels")
	flag.StringVar(&runName, "runName", "", "Name of this run")
	flag.StringVar(&savePath, "savePath", "", "Directory to save the run into")
	flag.BoolVar(&verbose, "verbose", false, "Enable debug logging")

	flag.Parse()
}

func main() {
	parseArguments()

	var settings scale.Settings
	if settingsFile != "" {
		settings = scale.NewSettings(settingsFile)
	} else {
		settings = scale.Settings{
			BandHeight:  bandHeight,
			BandWidth:   bandWidth,
			CatalogFile: catalogFile,
			EndColor:    gradient.LabColor{L: endL, A: endA, B: endB},
			RunName:     runName,
			SavePath:    savePath,
			StartColor:  gradient.LabColor{L: startL, A: startA, B: startB},
			Steps:       steps,
			Verbose:     verbose,
		}
	}

	s := scale.NewScale(settings)
	if err := s.Run(); err != nil {
		logger := bslogger.NewLogger("FolioScale", bslogger.Normal, nil)
		logger.Fatal(err.Error())
	}
}
