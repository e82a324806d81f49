package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/karlmutch/envflag"
	log "github.com/mgutz/logxi/v1"

	"github.com/BeatGlow/ybt"
	"github.com/BeatGlow/ybt/fadecandy"
	"github.com/BeatGlow/ybt/imageio"
	"github.com/BeatGlow/ybt/pixel"
)

var (
	logger = log.New("img2ybt")

	configFlag  = flag.String("config", "", "Load conversion defaults from a YAML file")
	periodFlag  = flag.Float64("period", ybt.DefaultConfig.Period, "Mixing period in seconds")
	rateFlag    = flag.Float64("rate", ybt.DefaultConfig.Rate, "Output frame rate in frames per second")
	loopsFlag   = flag.Int("loops", ybt.DefaultConfig.Loops, "Number of periods to play, 0 plays forever")
	formatFlag  = flag.String("format", ybt.DefaultConfig.Format, `Animation output, "gif" or "png" frames`)
	matrixFlag  = flag.String("matrix", "", "Write a still image through the named color matrix instead of an animation")
	outputFlag  = flag.String("o", "", "Output path (single input file only)")
	opcFlag     = flag.String("opc", "", "Stream the animation to an OPC server at host:port instead of writing a file")
	channelFlag = flag.Uint("opc-channel", 0, "OPC channel to stream to")
	verboseFlag = flag.Bool("v", false, "Enable debug logging")
)

func usage() {
	fmt.Fprintln(os.Stderr, path.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "usage: ", os.Args[0], "[options] file ...")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "img2ybt converts images into yellow-blue-time animations, in which the")
	fmt.Fprintln(os.Stderr, "red-green axis is re-encoded as yellows and blues alternating over time")
	fmt.Fprintln(os.Stderr, "with the true yellows and blues of the image.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options can also be set from environment variables by changing dashes")
	fmt.Fprintln(os.Stderr, "'-' to underscores and using upper case.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Log levels are handled by the LOGXI environment variables, documented at")
	fmt.Fprintln(os.Stderr, "https://github.com/mgutz/logxi")
}

func init() {
	flag.Usage = usage
}

func main() {
	if !flag.Parsed() {
		envflag.Parse()
	}
	if *verboseFlag {
		logger.SetLevel(log.LevelDebug)
	}
	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	config, err := loadConfig()
	if err != nil {
		fatal(err)
	}
	if *outputFlag != "" && flag.NArg() > 1 {
		fatal(errors.New("-o needs a single input file"))
	}

	var failed int
	for _, name := range flag.Args() {
		if err := convert(config, name); err != nil {
			logger.Error("conversion failed", "file", name, "error", err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func loadConfig() (*ybt.Config, error) {
	config := ybt.DefaultConfig
	if *configFlag != "" {
		loaded, err := ybt.LoadConfig(*configFlag)
		if err != nil {
			return nil, err
		}
		config = *loaded
	}

	// Flags given explicitly win over the configuration file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "period":
			config.Period = *periodFlag
		case "rate":
			config.Rate = *rateFlag
		case "loops":
			config.Loops = *loopsFlag
		case "format":
			config.Format = *formatFlag
		}
	})
	return &config, nil
}

func convert(config *ybt.Config, name string) error {
	img, err := imageio.Open(name)
	if err != nil {
		return err
	}
	logger.Debug("loaded image", "file", name, "bounds", img.Bounds().String())

	if *matrixFlag != "" {
		return still(config, name, img)
	}

	seq, err := ybt.Convert(img, config.Period, config.Rate)
	if err != nil {
		return err
	}
	logger.Debug("composed sequence", "frames", seq.Len(), "rate", seq.Rate, "duration", seq.Duration().String())

	if *opcFlag != "" {
		return play(config, seq)
	}

	switch config.Format {
	case "gif":
		out := outputName(name, ".gif")
		fmt.Printf("converting %s to %s\n", name, out)
		return imageio.SaveGIF(out, seq, config.Loops)
	case "png":
		stem := outputName(name, "")
		fmt.Printf("converting %s to %s-*.png\n", name, stem)
		_, err = imageio.SaveFrames(filepath.Dir(stem), filepath.Base(stem), seq)
		return err
	default:
		return fmt.Errorf("unknown output format %q", config.Format)
	}
}

// still writes a single image with the named color matrix applied, rather
// than an animation.
func still(config *ybt.Config, name string, img *pixel.RGBImage) error {
	m, ok := config.Matrix(*matrixFlag)
	if !ok {
		return fmt.Errorf("unknown color matrix %q", *matrixFlag)
	}

	out := outputName(name, "-"+*matrixFlag+".png")
	fmt.Printf("converting %s to %s\n", name, out)
	return imageio.Save(out, m.Apply(img))
}

func play(config *ybt.Config, seq *ybt.Sequence) error {
	c, err := fadecandy.Dial(*opcFlag)
	if err != nil {
		return err
	}

	fmt.Printf("streaming to %s at %v fps, hit control-c to stop...\n", c, seq.Rate)
	return c.Play(seq, uint8(*channelFlag), config.Loops)
}

// outputName replaces the extension of an input filename, or returns the
// explicit output path if one was given.
func outputName(name, ext string) string {
	if *outputFlag != "" {
		return *outputFlag
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
