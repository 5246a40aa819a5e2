package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mucteba/podcover/pkg/cover"
	"github.com/mucteba/podcover/pkg/generator"
	"github.com/mucteba/podcover/pkg/imaging"
	"github.com/mucteba/podcover/pkg/logging"
)

var version = "dev"

var (
	verbosity int
	opts      generateOptions

	rootCmd = &cobra.Command{
		Use:   "podcover",
		Short: "Generate Instagram-story podcast covers",
		Long: `podcover renders a 1080x1920 SVG cover for a podcast episode from a
title, an optional subtitle, a cover image, and an optional episode number.
Persian/Arabic text flips the layout to right-to-left automatically.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.title == "" && opts.imagePath == "" {
				return cmd.Help()
			}
			return runGenerate(opts)
		},
	}
)

// generateOptions collects everything a single generation run needs, whether
// it came from flags or from the interactive prompts.
type generateOptions struct {
	title     string
	subtitle  string
	episode   string
	website   string
	imagePath string
	logoPath  string
	output    string
	themePath string
	toPNG     bool
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.title, "title", "t", "", "Episode title (required)")
	flags.StringVarP(&opts.subtitle, "subtitle", "s", "", "Episode subtitle")
	flags.StringVarP(&opts.imagePath, "image", "i", "", "Cover image path (required)")
	flags.StringVarP(&opts.episode, "episode", "e", "", "Episode number")
	flags.StringVarP(&opts.logoPath, "logo", "l", "", "Logo image path")
	flags.StringVarP(&opts.website, "website", "w", "", "Website label for the bottom bar (default: the theme's website, "+cover.DefaultWebsite+" built in)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file or directory (default: derived name in the working directory)")
	flags.StringVar(&opts.themePath, "theme", "", "TOML theme file overriding the built-in palette")
	flags.BoolVar(&opts.toPNG, "png", false, "Also rasterize the cover to PNG (needs rsvg-convert, inkscape, or cairosvg)")

	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("podcover version %s\n", version)
	},
}

// runGenerate resolves the inputs, builds the request, and writes the cover.
func runGenerate(opts generateOptions) error {
	theme := cover.DefaultTheme()
	if opts.themePath != "" {
		loaded, err := cover.LoadTheme(opts.themePath)
		if err != nil {
			return err
		}
		theme = loaded
	}

	req, err := buildRequest(opts)
	if err != nil {
		return err
	}

	dir, name := splitOutput(opts.output)
	res, err := generator.Generate(req, theme, dir, name)
	if err != nil {
		return err
	}

	if res.Fallback {
		pterm.Warning.Printfln("Wrote fallback cover: %s", res.Path)
	} else {
		pterm.Success.Printfln("Wrote cover: %s", res.Path)
	}

	if opts.toPNG {
		pngPath := strings.TrimSuffix(res.Path, ".svg") + ".png"
		if err := generator.ToPNG(res.Path, pngPath); err != nil {
			return err
		}
		pterm.Success.Printfln("Wrote PNG: %s", pngPath)
	}
	return nil
}

// buildRequest loads the image payloads and normalizes the text inputs. A
// missing cover image is fatal; a missing logo degrades to the placeholder
// glyph with a warning.
func buildRequest(opts generateOptions) (*cover.Request, error) {
	imagePath, err := imaging.FindFile(opts.imagePath)
	if err != nil {
		return nil, err
	}
	image, err := imaging.Load(imagePath, imaging.CoverMaxKB)
	if err != nil {
		return nil, err
	}

	var logo *imaging.Payload
	if opts.logoPath != "" {
		logoPath, err := imaging.FindFile(opts.logoPath)
		if err == nil {
			logo, err = imaging.Load(logoPath, imaging.LogoMaxKB)
		}
		if err != nil {
			log.Warn().Err(err).Msg("logo unavailable, using placeholder glyph")
			logo = nil
		}
	}

	episode, err := normalizeEpisode(opts.episode)
	if err != nil {
		return nil, err
	}

	req := &cover.Request{
		Title:    strings.TrimSpace(opts.title),
		Subtitle: strings.TrimSpace(opts.subtitle),
		Episode:  episode,
		Website:  strings.TrimSpace(opts.website),
		Image:    image,
		Logo:     logo,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// normalizeEpisode accepts ASCII or Persian digits and stores the ASCII form;
// localization back to Persian happens at render time.
func normalizeEpisode(s string) (string, error) {
	s = cover.LatinizeDigits(strings.TrimSpace(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("episode number must be digits, got %q", s)
		}
	}
	return s, nil
}

// splitOutput interprets the -o flag: an .svg path names the file directly,
// anything else is a target directory with a derived filename.
func splitOutput(output string) (dir, name string) {
	if output == "" {
		return ".", ""
	}
	if strings.HasSuffix(strings.ToLower(output), ".svg") {
		return filepath.Dir(output), filepath.Base(output)
	}
	return output, ""
}
