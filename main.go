// Command vita renders two-column A4 résumés from JSON presets or over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ByLCY/vita/config"
	"github.com/ByLCY/vita/fonts"
)

var settings *config.Settings

var flagFonts = map[fonts.Role]*string{}

var rootCmd = &cobra.Command{
	Use:           "vita",
	Short:         "Two-column résumé PDF generator",
	Long:          "vita lays out a one-page A4 résumé (contact card on the left, sections on the right) and renders it as PDF or PNG.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadSettings(cmd)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("engine", config.DefaultEngine, "渲染引擎: pdf | canvas | preview (VITA_ENGINE)")
	pf.String("style", "", "YAML 样式文件 (VITA_STYLE)")
	pf.String("icons", "", "联系方式图标目录 (VITA_ICONS_DIR)")
	for _, role := range fonts.Roles {
		flagFonts[role] = pf.String("font-"+string(role), "", fmt.Sprintf("%s 字体 TTF 路径", role))
	}
}

// loadSettings reads the environment and lets explicitly set flags win.
func loadSettings(cmd *cobra.Command) error {
	s, err := config.FromEnv()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("engine") {
		s.Engine, _ = flags.GetString("engine")
	}
	if flags.Changed("style") {
		s.StylePath, _ = flags.GetString("style")
	}
	if flags.Changed("icons") {
		s.IconsDir, _ = flags.GetString("icons")
	}
	for role, v := range flagFonts {
		if flags.Changed("font-"+string(role)) && *v != "" {
			s.Fonts[role] = *v
		}
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		s.Addr, _ = flags.GetString("addr")
	}
	if flags.Lookup("max-upload-mb") != nil && flags.Changed("max-upload-mb") {
		s.MaxUploadMB, _ = flags.GetInt("max-upload-mb")
	}
	if err := s.Validate(); err != nil {
		return err
	}
	settings = s
	return nil
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
