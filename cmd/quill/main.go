package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/quillpdf/quill"
	"github.com/quillpdf/quill/api"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#32CD32"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6347"))
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quill",
		Short: "Assemble report descriptions into paginated PDF documents",
		Long: `Quill reads a YAML report description (metadata plus an ordered list of
text, chart, and table sections) and assembles it into a paginated PDF.`,
		Example: `  quill generate report.yaml -o report.pdf
  quill generate report.yaml --quality high --toc
  quill version`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

func newGenerateCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate <report.yaml>",
		Short: "Generate a PDF from a YAML report description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, opts, err := loadReport(args[0])
			if err != nil {
				return err
			}
			applyOptionFlags(cmd.Flags(), &opts)

			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".pdf"
			}

			if err := quill.GenerateFile(report, opts, output); err != nil {
				return err
			}

			info, err := os.Stat(output)
			if err != nil {
				return err
			}
			fmt.Println(successStyle.Render(fmt.Sprintf("✓ wrote %s (%d bytes)", output, info.Size())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF path (default: input name with .pdf)")
	cmd.Flags().String("page-size", "", "page size: A4, Letter or Legal")
	cmd.Flags().String("orientation", "", "page orientation: portrait or landscape")
	cmd.Flags().String("quality", "", "chart quality tier: draft, standard or high")
	cmd.Flags().Bool("toc", false, "include a table of contents")
	cmd.Flags().Bool("no-page-numbers", false, "omit page-number footers")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("quill %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

// applyOptionFlags overlays explicitly set flags on the options loaded from
// the report file.
func applyOptionFlags(flags *pflag.FlagSet, opts *api.Options) {
	if flags.Changed("page-size") {
		v, _ := flags.GetString("page-size")
		opts.PageSize = api.PageSize(v)
	}
	if flags.Changed("orientation") {
		v, _ := flags.GetString("orientation")
		opts.Orientation = api.Orientation(v)
	}
	if flags.Changed("quality") {
		v, _ := flags.GetString("quality")
		opts.Quality = api.Quality(v)
	}
	if flags.Changed("toc") {
		v, _ := flags.GetBool("toc")
		opts.IncludeTableOfContents = v
	}
	if flags.Changed("no-page-numbers") {
		v, _ := flags.GetBool("no-page-numbers")
		opts.IncludePageNumbers = !v
	}
}

// reportFile is the on-disk YAML shape of a report description.
type reportFile struct {
	Title    string        `yaml:"title"`
	Author   string        `yaml:"author"`
	Date     string        `yaml:"date"`
	Company  string        `yaml:"company"`
	Subtype  string        `yaml:"subtype"`
	Logo     string        `yaml:"logo"`
	Options  api.Options   `yaml:"options"`
	Sections []sectionSpec `yaml:"sections"`
}

// sectionSpec is the flat YAML form of the Section union, discriminated by
// the type field.
type sectionSpec struct {
	Type        string           `yaml:"type"`
	Title       string           `yaml:"title"`
	Content     string           `yaml:"content"`
	Description string           `yaml:"description"`
	Theme       string           `yaml:"theme"`
	Size        api.SizeClass    `yaml:"size"`
	Chart       *api.ChartConfig `yaml:"chart"`
	Headers     []string         `yaml:"headers"`
	Rows        [][]string       `yaml:"rows"`
}

func loadReport(path string) (api.ReportData, api.Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return api.ReportData{}, api.Options{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	file := reportFile{Options: api.DefaultOptions()}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return api.ReportData{}, api.Options{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	meta := api.ReportMetadata{
		Title:   file.Title,
		Author:  file.Author,
		Date:    file.Date,
		Company: file.Company,
		Subtype: file.Subtype,
	}
	if file.Logo != "" {
		logo, err := loadLogo(file.Logo)
		if err != nil {
			return api.ReportData{}, api.Options{}, err
		}
		meta.Logo = logo
	}

	sections := make([]api.Section, 0, len(file.Sections))
	for i, spec := range file.Sections {
		section, err := spec.toSection()
		if err != nil {
			return api.ReportData{}, api.Options{}, fmt.Errorf("section %d: %w", i+1, err)
		}
		sections = append(sections, section)
	}

	return api.ReportData{Metadata: meta, Sections: sections}, file.Options, nil
}

func (s sectionSpec) toSection() (api.Section, error) {
	switch s.Type {
	case "text":
		return api.TextSection{Title: s.Title, Content: s.Content}, nil
	case "chart":
		if s.Chart == nil {
			return nil, fmt.Errorf("chart section %q has no chart config", s.Title)
		}
		return api.ChartSection{
			Title:       s.Title,
			Description: s.Description,
			Config:      *s.Chart,
			Theme:       s.Theme,
			Size:        s.Size,
		}, nil
	case "table":
		return api.TableSection{Title: s.Title, Headers: s.Headers, Rows: s.Rows}, nil
	default:
		return nil, fmt.Errorf("unknown section type %q", s.Type)
	}
}

func loadLogo(path string) (*api.Logo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read logo %s: %w", path, err)
	}
	format := api.ImagePNG
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		format = api.ImageJPEG
	}
	return &api.Logo{Data: data, Format: format}, nil
}
