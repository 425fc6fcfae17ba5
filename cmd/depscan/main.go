// Command depscan is the CLI entry point: it loads configuration, runs one
// analysis session over the configured roots, and writes one report file
// per configured output format.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"depscan/internal/analyzer"
	"depscan/internal/config"
	"depscan/internal/filter"
	"depscan/internal/logger"
	"depscan/internal/report"
	"depscan/internal/reportdata"
	"depscan/internal/ui"
)

const (
	appName    = "depscan"
	appVersion = "1.0.0"
	appDesc    = "A Pure Go class-file dependency analyzer (Ca/Ce/Abstractness/Instability/Distance, cycle detection)"
)

var (
	configPath  string
	verbose     bool
	showVersion bool
	outputDir   string
	formats     string
	roots       string
	properties  string
)

func init() {
	flag.StringVar(&configPath, "config", "depscan.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "depscan.yaml", "Path to configuration file (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&outputDir, "output", "", "Override output directory from config")
	flag.StringVar(&formats, "format", "", "Comma-separated output formats (excel,html,word,json); overrides config")
	flag.StringVar(&roots, "roots", "", "Comma-separated class-file roots (directories or .jar/.zip/.war archives)")
	flag.StringVar(&properties, "properties", "", "Path to a depscan.properties file (filter prefixes + component list)")
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\nPANIC: %v\n", r)
		}
		waitForEnter()
	}()

	os.Exit(run())
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	if roots == "" {
		fmt.Println("no roots given: pass -roots dir1,dir2,archive.jar")
		return 1
	}

	logger.Info("Loading configuration...")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		return 1
	}

	if outputDir != "" {
		cfg.Output.Dir = outputDir
		cfg.EnsureOutputDir()
	}
	if formats != "" {
		cfg.Output.Formats = strings.Split(formats, ",")
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("invalid configuration: %v\n", err)
		return 1
	}

	logPath := filepath.Join(cfg.Output.Dir, "depscan.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	props, err := config.LoadProperties(properties, "depscan.properties")
	if err != nil {
		logger.Error("failed to load properties: %v", err)
		return 1
	}

	components := cfg.Analysis.Components
	if len(props.Components) > 0 {
		components = props.Components
	}
	filterPrefixes := append(append([]string{}, cfg.Analysis.FilterPrefixes...), props.FilterPrefixes...)

	if err := runAnalysis(cfg, components, filterPrefixes); err != nil {
		logger.Error("Analysis failed: %v", err)
		return 1
	}

	logger.Info("Analysis complete. Check [%s] directory.", cfg.Output.Dir)
	return 0
}

// waitForEnter pauses execution so a double-clicked console window doesn't
// close immediately.
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func runAnalysis(cfg *config.Config, components, filterPrefixes []string) error {
	pipeline := ui.NewPipeline([]ui.Phase{
		ui.PhaseParsing,
		ui.PhaseMetrics,
		ui.PhaseReporting,
	})

	logger.Info("Analyzing roots: %s", roots)
	scanBar := pipeline.NextPhase(1)

	analyzeCfg := analyzer.Config{
		Filter:           filter.New(filterPrefixes),
		Components:       components,
		SkipInnerClasses: !cfg.Analysis.AcceptInnerClasses,
	}

	pkgs, err := analyzer.Analyze(context.Background(), strings.Split(roots, ","), analyzeCfg, nil)
	if err != nil {
		return err
	}
	scanBar.Finish()

	logger.Info("Computing metrics over %d packages...", len(pkgs))
	metricsBar := pipeline.NextPhase(1)
	rpt := reportdata.Build(pkgs)
	metricsBar.Finish()

	logger.Info("Generating reports...")
	exporters := report.Exporters(cfg.Output.Formats)
	genBar := pipeline.NextPhase(len(exporters))

	var exportErrors []error
	for format, exp := range exporters {
		path := cfg.OutputPath(format)
		if err := exp.Export(rpt, path); err != nil {
			logger.Error("Export failed: %v", err)
			exportErrors = append(exportErrors, err)
		}
		genBar.Increment()
	}
	genBar.Finish()
	pipeline.Finish()

	if len(exportErrors) > 0 {
		return fmt.Errorf("one or more exports failed: %d errors", len(exportErrors))
	}
	return nil
}
