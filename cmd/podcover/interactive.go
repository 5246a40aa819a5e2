package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mucteba/podcover/pkg/cover"
	"github.com/mucteba/podcover/pkg/generator"
	"github.com/mucteba/podcover/pkg/imaging"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Prompt for the cover inputs step by step",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := promptOptions()
		if err != nil {
			return err
		}
		return runGenerate(*opts)
	},
}

// promptOptions walks the user through the inputs, re-asking until each
// answer is usable.
func promptOptions() (*generateOptions, error) {
	var opts generateOptions

	for {
		title, err := pterm.DefaultInteractiveTextInput.Show("Episode title")
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(title) != "" {
			opts.title = strings.TrimSpace(title)
			break
		}
		pterm.Warning.Println("Title cannot be empty.")
	}

	subtitle, err := pterm.DefaultInteractiveTextInput.Show("Subtitle (optional)")
	if err != nil {
		return nil, err
	}
	opts.subtitle = strings.TrimSpace(subtitle)

	for {
		episode, err := pterm.DefaultInteractiveTextInput.Show("Episode number (optional)")
		if err != nil {
			return nil, err
		}
		normalized, err := normalizeEpisode(episode)
		if err == nil {
			opts.episode = normalized
			break
		}
		pterm.Warning.Println("Episode number must be digits.")
	}

	for {
		hint, err := pterm.DefaultInteractiveTextInput.Show("Cover image path")
		if err != nil {
			return nil, err
		}
		path, err := imaging.FindFile(hint)
		if err != nil {
			pterm.Warning.Printfln("Image not found: %s", hint)
			continue
		}
		adviseOnImage(path)
		opts.imagePath = path
		break
	}

	logoHint, err := pterm.DefaultInteractiveTextInput.Show("Logo path (optional)")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(logoHint) != "" {
		if path, err := imaging.FindFile(logoHint); err == nil {
			opts.logoPath = path
		} else {
			pterm.Warning.Printfln("Logo not found, the placeholder glyph will be used: %s", logoHint)
		}
	}

	website, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(cover.DefaultWebsite).
		Show("Website label")
	if err != nil {
		return nil, err
	}
	opts.website = strings.TrimSpace(website)

	output, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(defaultOutputName(opts)).
		Show("Output file")
	if err != nil {
		return nil, err
	}
	opts.output = strings.TrimSpace(output)

	// Only offer rasterization when a converter can actually run it.
	if generator.HasConverter() {
		toPNG, err := pterm.DefaultInteractiveConfirm.Show("Also create a high-quality PNG?")
		if err != nil {
			return nil, err
		}
		opts.toPNG = toPNG
	}

	printSummary(opts)

	confirmed, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(true).
		Show("Generate this cover?")
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, fmt.Errorf("cancelled")
	}
	return &opts, nil
}

// adviseOnImage warns about inputs that render poorly in the 800x800 panel.
// The warnings are advisory; generation proceeds either way.
func adviseOnImage(path string) {
	width, height, err := imaging.Dimensions(path)
	if err != nil {
		return
	}
	for _, msg := range imageAdvisories(width, height) {
		pterm.Warning.Println(msg)
	}
}

// imageAdvisories lists the soft warnings for a cover image of the given
// pixel size. Aspect only warns past a 0.2 deviation from square; mild
// rectangles crop fine.
func imageAdvisories(width, height int) []string {
	var advisories []string
	if width < 800 || height < 800 {
		advisories = append(advisories, fmt.Sprintf("Image is %dx%d; below 800x800 it may look soft in the panel.", width, height))
	}
	if height > 0 {
		if ratio := float64(width) / float64(height); math.Abs(ratio-1) > 0.2 {
			advisories = append(advisories, "Image is far from square; it will be center-cropped to fit the panel.")
		}
	}
	return advisories
}

// defaultOutputName derives the filename offered at the output prompt.
func defaultOutputName(opts generateOptions) string {
	req := cover.Request{Title: opts.title, Episode: opts.episode}
	return req.OutputName()
}

func printSummary(opts generateOptions) {
	pterm.DefaultSection.Println("Cover summary")
	pterm.Info.Printfln("Title:    %s", opts.title)
	if opts.subtitle != "" {
		pterm.Info.Printfln("Subtitle: %s", opts.subtitle)
	}
	if opts.episode != "" {
		pterm.Info.Printfln("Episode:  %s", opts.episode)
	}
	pterm.Info.Printfln("Image:    %s", opts.imagePath)
	if opts.logoPath != "" {
		pterm.Info.Printfln("Logo:     %s", opts.logoPath)
	}
	pterm.Info.Printfln("Website:  %s", opts.website)
	if opts.output != "" {
		pterm.Info.Printfln("Output:   %s", opts.output)
	}
	if opts.toPNG {
		pterm.Info.Println("PNG:      yes")
	}
}
