package scale

import (
	"FolioScale/gradient"
	"FolioScale/misc"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger bslogger.Logger

	BandHeight  int
	BandWidth   int
	CatalogFile string
	EndColor    gradient.LabColor
	OutputHTML  string
	OutputPNG   string
	RunName     string
	SavePath    string
	StartColor  gradient.LabColor
	Steps       int
	Verbose     bool
}

func NewSettings(settingsFile string) Settings {
	s := Settings{
		logger: bslogger.NewLogger("ScaleSettings", bslogger.Normal, nil),
	}
	contents, err := misc.ReadFile(settingsFile)
	misc.CheckError(err, s.logger, misc.Fatal)
	misc.CheckError(json.Unmarshal(contents, &s), s.logger, misc.Fatal)
	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	s.logger.Debug(s.String())
	return s
}

func (s *Settings) String() string {
	output := "\nScale settings\n"
	output += fmt.Sprintf("Start Color: %s\n", s.StartColor)
	output += fmt.Sprintf("End Color: %s\n", s.EndColor)
	output += fmt.Sprintf("Steps: %d\n", s.Steps)
	output += fmt.Sprintf("Catalog File: %s\n", s.CatalogFile)
	output += fmt.Sprintf("Save Path: %s\n", s.SavePath)
	output += fmt.Sprintf("Run Name: %s", s.RunName)
	return output
}

// Verify fills in defaults for unset fields. Explicitly set but invalid
// gradient inputs (a step count of 1, an out-of-range lightness) are left
// alone so Generate can reject them.
func (s *Settings) Verify() error {
	if s.BandHeight <= 0 {
		s.BandHeight = 90
	}
	if s.BandWidth <= 0 {
		s.BandWidth = 360
	}
	if s.OutputHTML == "" {
		s.OutputHTML = "color_scale.html"
	}
	if s.OutputPNG == "" {
		s.OutputPNG = "color_scale.png"
	}
	if s.RunName == "" {
		s.RunName = "scale_" + time.Now().Format("2006_01_02-03_04_05")
	}
	if s.SavePath == "" {
		s.SavePath, _ = os.Getwd()
	}
	if s.StartColor == (gradient.LabColor{}) && s.EndColor == (gradient.LabColor{}) {
		// A dark to light gray ramp
		s.StartColor = gradient.LabColor{L: 33}
		s.EndColor = gradient.LabColor{L: 93}
	}
	if s.Steps == 0 {
		s.Steps = 10
	}
	return nil
}
