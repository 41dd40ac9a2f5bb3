package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/plot/vg"

	"github.com/rodrigo-brito/ninjachart"
	"github.com/rodrigo-brito/ninjachart/config"
	"github.com/rodrigo-brito/ninjachart/dataset"
	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/plot"
	"github.com/rodrigo-brito/ninjachart/plot/indicator"
	"github.com/rodrigo-brito/ninjachart/regression"
	"github.com/rodrigo-brito/ninjachart/render"
	"github.com/rodrigo-brito/ninjachart/tools/log"
)

const histogramBins = 10

var (
	overlayColor = plot.Palette(3)[1]
	bandColor    = plot.Palette(3)[2]
)

func main() {
	app := &cli.App{
		Name:     "ninjachart",
		HelpName: "ninjachart",
		Usage:    "Render bar, line, pie, doughnut and scatter charts from comma separated data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file (yaml, json or toml)",
				EnvVars: []string{"NINJACHART_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "render",
				Usage: "render a chart and export it as PNG",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "x", Usage: "X data, eg: 1,2,3", Required: true},
					&cli.StringFlag{Name: "y", Usage: "Y data, eg: 2,4,6", Required: true},
					&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Value: string(model.KindBar), Usage: "bar, line, pie, doughnut, scatter or scatter-fit"},
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}},
					&cli.StringFlag{Name: "x-label"},
					&cli.StringFlag{Name: "y-label"},
					&cli.BoolFlag{Name: "grid", Usage: "show gridlines (default from config)"},
					&cli.StringFlag{Name: "fit-line", Usage: "solid or dashed"},
					&cli.StringFlag{Name: "corner", Usage: "top-left, top-right, bottom-left or bottom-right"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output PNG file"},
				},
				Action: renderAction,
			},
			{
				Name:  "fit",
				Usage: "print the linear fit of the data and a histogram of its residuals",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "x", Required: true},
					&cli.StringFlag{Name: "y", Required: true},
				},
				Action: func(c *cli.Context) error {
					return fit(c.App.Writer, c.String("x"), c.String("y"))
				},
			},
			{
				Name:  "kinds",
				Usage: "list chart kinds and the options each one uses",
				Action: func(c *cli.Context) error {
					kinds(c.App.Writer)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func renderAction(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	request := model.Request{
		XData:   c.String("x"),
		YData:   c.String("y"),
		Kind:    c.String("kind"),
		Title:   c.String("title"),
		XLabel:  c.String("x-label"),
		YLabel:  c.String("y-label"),
		Grid:    cfg.Style.Grid,
		FitLine: cfg.Style.FitLine,
		Corner:  cfg.Style.Corner,
	}
	if c.IsSet("grid") {
		request.Grid = c.Bool("grid")
	}
	if c.IsSet("fit-line") {
		request.FitLine = c.String("fit-line")
	}
	if c.IsSet("corner") {
		request.Corner = c.String("corner")
	}

	output := cfg.Output
	if c.IsSet("output") {
		output = c.String("output")
	}

	renderer := render.NewRenderer(render.WithSize(
		vg.Length(cfg.Image.Width)*vg.Inch,
		vg.Length(cfg.Image.Height)*vg.Inch,
	))

	chart := ninjachart.New(renderer,
		ninjachart.WithLogLevel(level),
		ninjachart.WithIndicators(overlays(cfg.Overlay)...),
	)
	defer chart.Close()

	descriptor, err := chart.Render(request)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := chart.Export(file); err != nil {
		return err
	}

	for _, text := range descriptor.Legend {
		log.Info(text)
	}
	log.Infof("chart saved to %s", output)
	return nil
}

func overlays(cfg config.OverlayConfig) []plot.Indicator {
	var indicators []plot.Indicator
	if cfg.SMAPeriod > 0 {
		indicators = append(indicators, indicator.SMA(cfg.SMAPeriod, overlayColor))
	}
	if cfg.BollingerPeriod > 0 {
		indicators = append(indicators, indicator.BollingerBands(cfg.BollingerPeriod, cfg.BollingerStdDev, bandColor, overlayColor))
	}
	return indicators
}

func fit(w io.Writer, xData, yData string) error {
	ds, err := dataset.New(dataset.Parse(xData), dataset.Parse(yData), model.KindScatterFit)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	points := ds.Points()
	result, err := regression.Fit(points)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Points", "Slope", "Intercept", "R²", "Equation"})
	table.Append([]string{
		strconv.Itoa(len(points)),
		fmt.Sprintf("%.5f", result.Slope),
		fmt.Sprintf("%.5f", result.Intercept),
		fmt.Sprintf("%.5f", result.RSquared),
		regression.FormatEquation(result),
	})
	table.Render()

	fmt.Fprintln(w, "------ RESIDUALS -------")
	residuals := regression.Residuals(result, points)
	if lo.Min(residuals) == lo.Max(residuals) {
		fmt.Fprintf(w, "all residuals equal %.5f\n", residuals[0])
		return nil
	}

	hist := histogram.Hist(histogramBins, residuals)
	return histogram.Fprint(w, hist, histogram.Linear(10))
}

func kinds(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Axis labels", "Fit info", "Fit line style", "Annotation corner"})
	for _, kind := range model.Kinds() {
		fields := plot.Fields(kind)
		table.Append([]string{
			kind.String(),
			strconv.FormatBool(fields.AxisLabels),
			strconv.FormatBool(fields.FitInfo),
			strconv.FormatBool(fields.FitLineStyle),
			strconv.FormatBool(fields.AnnotationCorner),
		})
	}
	table.Render()
}
