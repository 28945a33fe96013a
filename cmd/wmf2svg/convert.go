package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/benoitkugler/wmfsvg/gdiraster"
	"github.com/benoitkugler/wmfsvg/gdisvg"
	"github.com/benoitkugler/wmfsvg/wmf"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type config struct {
	format    string // svg, wmf or png
	outputDir string // empty for the input directory
	size      int    // of png images
	strict    bool

	svg    gdisvg.Options
	logger logrus.FieldLogger
}

// output is a device whose result may be saved
type output interface {
	gdi.Device
	io.WriterTo
}

func (cfg config) newOutput(log logrus.FieldLogger) output {
	switch cfg.format {
	case "wmf":
		return wmf.NewEncoder(wmf.Options{Logger: log})
	case "png":
		return gdiraster.NewDevice(gdiraster.Options{Width: cfg.size, Height: cfg.size, Logger: log})
	default:
		opts := cfg.svg
		opts.Logger = log
		return gdisvg.NewDevice(opts)
	}
}

// outputPath replaces the extension of `input`, and its directory
// if an output directory is set.
func (cfg config) outputPath(input string) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + "." + cfg.format
	dir := cfg.outputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	out := filepath.Join(dir, name)
	if cfg.format == "wmf" && out == filepath.Clean(input) {
		// do not overwrite the input
		out = filepath.Join(dir, strings.TrimSuffix(name, ".wmf")+".out.wmf")
	}
	return out
}

// convert decodes the metafile at `input` and writes the
// converted file, returning its path.
func (cfg config) convert(input string) (string, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return "", err
	}

	log := cfg.logger.WithField("file", input)
	opts := wmf.Options{Logger: log}
	if cfg.strict {
		opts.ErrorMode = wmf.StrictErrorMode
		opts.StrictChecksum = true
	}
	dev := cfg.newOutput(log)
	if err := wmf.NewParser(opts).Parse(bytes.NewReader(data), dev); err != nil {
		return "", err
	}

	path := cfg.outputPath(input)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := dev.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, f.Close()
}

// checkTargets returns an error if two of `files`
// would be converted to the same output file.
func (cfg config) checkTargets(files []string) error {
	seen := make(map[string]string, len(files))
	for _, file := range files {
		out := cfg.outputPath(file)
		if prev, ok := seen[out]; ok {
			return fmt.Errorf("%s and %s are both converted to %s", prev, file, out)
		}
		seen[out] = file
	}
	return nil
}

// convertAll converts `files` with at most `jobs` goroutines.
// Every failure is logged, and the first one is returned.
// Nothing is converted if two files share their output.
func convertAll(cfg config, files []string, jobs int) error {
	if err := cfg.checkTargets(files); err != nil {
		cfg.logger.WithError(err).Error("conflicting outputs")
		return err
	}
	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for _, file := range files {
		file := file
		g.Go(func() error {
			out, err := cfg.convert(file)
			if err != nil {
				cfg.logger.WithError(err).WithField("file", file).Error("conversion failed")
				return err
			}
			cfg.logger.WithFields(logrus.Fields{"file": file, "output": out}).Info("converted")
			return nil
		})
	}
	return g.Wait()
}

// loadProperties reads font properties overrides from a YAML file,
// either flat ("font-emheight.Arial: 0.9") or grouped by prefix:
//
//	alternative-font:
//	  MS Gothic: IPAGothic
func loadProperties(path string) (gdisvg.Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	overrides := map[string]string{}
	for key, value := range raw {
		group, ok := value.(map[string]interface{})
		if !ok {
			overrides[key] = scalar(value)
			continue
		}
		for face, v := range group {
			overrides[key+"."+face] = scalar(v)
		}
	}
	return gdisvg.DefaultProperties().Merge(overrides), nil
}

// scalar formats a YAML value; null gives "", removing the property.
func scalar(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
