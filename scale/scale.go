package scale

import (
	"FolioScale/catalog"
	"FolioScale/gradient"
	"FolioScale/misc"
	"FolioScale/render"
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

// Scale runs the full pipeline: generate the gradient, annotate it against
// the catalog when one is configured, and write the rendered artifacts into
// the run directory.
type Scale struct {
	catalog  *catalog.Catalog
	logger   bslogger.Logger
	settings Settings
}

func NewScale(settings Settings) Scale {
	verbosity := bslogger.Normal
	if settings.Verbose {
		verbosity = bslogger.All
	}
	scale := Scale{
		logger: bslogger.NewLogger("Scale", verbosity, nil),
	}
	misc.CheckError(settings.Verify(), scale.logger, misc.Fatal)
	scale.settings = settings
	return scale
}

func (s *Scale) Run() error {
	startTime := time.Now()

	records, err := gradient.Generate(s.settings.StartColor, s.settings.EndColor, s.settings.Steps)
	if err != nil {
		return err
	}
	s.logger.Infof("Generated %d swatches from %s to %s", len(records), s.settings.StartColor, s.settings.EndColor)

	if s.settings.CatalogFile != "" {
		s.catalog, err = catalog.Load(s.settings.CatalogFile)
		if err != nil {
			return err
		}
		s.logger.Infof("Loaded catalog with %d colors", s.catalog.Len())
	}

	bands := make([]render.Band, len(records))
	for i := range records {
		record := records[i]
		band := render.Band{
			Step:  i + 1,
			Label: record.Label,
			Hex:   record.Hex,
			Lab:   record.Lab,
			Color: record.Color,
		}
		if s.catalog != nil {
			match, err := s.catalog.Closest(record.Lab)
			if err != nil {
				return err
			}
			band.Match = fmt.Sprintf("%s (dE2000: %.2f)", match.Name, match.DeltaE)
		}
		bands[i] = band
		s.logger.Debugf("Swatch %s", record.String())
	}

	// Create a directory to store the files for this run
	runDir := filepath.Join(s.settings.SavePath, s.settings.RunName)
	if _, err := os.Stat(runDir); os.IsNotExist(err) {
		if err := os.MkdirAll(runDir, os.ModePerm); err != nil {
			return fmt.Errorf("unable to create folder %s - %s", runDir, err)
		}
	}

	// Copy the settings to the directory so the run can be duplicated later
	contents, err := json.MarshalIndent(s.settings, "", "    ")
	if err != nil {
		return fmt.Errorf("unable to marshal settings - %s", err)
	}
	if _, err := misc.WriteFile(filepath.Join(runDir, "settings.json"), contents); err != nil {
		return err
	}

	// Record the run in a log file from here on
	logFile, err := os.Create(filepath.Join(runDir, "scale.log"))
	misc.CheckError(err, s.logger, misc.Warning)
	if err == nil {
		verbosity := bslogger.Normal
		if s.settings.Verbose {
			verbosity = bslogger.All
		}
		s.logger = bslogger.NewLogger("Scale", verbosity, logFile)
	}

	page, err := render.HTML(bands)
	if err != nil {
		return fmt.Errorf("unable to render page - %s", err)
	}
	pagePath := filepath.Join(runDir, s.settings.OutputHTML)
	if _, err := misc.WriteFile(pagePath, page); err != nil {
		return err
	}
	s.logger.Infof("Saved page to %s", pagePath)

	strip := render.PNG(bands, s.settings.BandWidth, s.settings.BandHeight)
	stripPath := filepath.Join(runDir, s.settings.OutputPNG)
	f, err := os.Create(stripPath)
	if err != nil {
		return fmt.Errorf("unable to create image %s - %s", stripPath, err)
	}
	if err := png.Encode(f, strip); err != nil {
		f.Close()
		return fmt.Errorf("unable to save image %s - %s", stripPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to close image %s - %s", stripPath, err)
	}
	s.logger.Infof("Saved image to %s", stripPath)

	s.logger.Infof("Done generating %d swatches in %s", len(records), time.Since(startTime))
	return nil
}
