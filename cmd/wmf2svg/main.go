// Command wmf2svg converts Windows metafiles to SVG documents,
// PNG previews, or normalized metafiles.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/benoitkugler/wmfsvg/gdisvg"
	"github.com/sirupsen/logrus"
)

var args struct {
	Format            string `short:"f" enum:"svg,wmf,png" default:"svg" help:"Output format. Supports svg, wmf (re-encoded) and png (preview)"`
	Compatible        bool   `help:"Favor SVG renderers with a limited text support"`
	ReplaceSymbolFont bool   `help:"Map the characters of the Symbol font to Unicode"`
	NoStyle           bool   `help:"Use inline styles instead of a style sheet"`
	Props             string `type:"existingfile" help:"YAML file of font properties, overriding the defaults"`
	Strict            bool   `help:"Fail on unsupported records and invalid checksums"`
	Size              int    `short:"s" default:"1024" help:"Maximum width and height of png images, in pixels"`
	Output            string `short:"o" type:"existingdir" help:"Output directory. Defaults to the directory of each input"`
	Jobs              int    `short:"j" default:"4" help:"Number of files converted concurrently"`
	Verbose           bool   `short:"v" help:"Log the skipped records and operations"`

	Files []string `arg:"" name:"files" type:"existingfile" help:"Metafiles to convert"`
}

func main() {
	kong.Parse(&args,
		kong.Description("Convert Windows metafiles (.wmf) to SVG, PNG or WMF."),
	)

	logger := logrus.StandardLogger()
	if args.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg := config{
		format:    args.Format,
		outputDir: args.Output,
		size:      args.Size,
		strict:    args.Strict,
		svg: gdisvg.Options{
			Compatible:        args.Compatible,
			ReplaceSymbolFont: args.ReplaceSymbolFont,
			UseStyle:          !args.NoStyle,
			Properties:        gdisvg.DefaultProperties(),
		},
		logger: logger,
	}
	if args.Props != "" {
		props, err := loadProperties(args.Props)
		if err != nil {
			logger.WithError(err).Fatal("invalid properties file")
		}
		cfg.svg.Properties = props
	}

	if err := convertAll(cfg, args.Files, args.Jobs); err != nil {
		os.Exit(1)
	}
}
