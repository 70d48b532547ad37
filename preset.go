package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ByLCY/vita/resume"
)

var presetPhoto string

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Create and check preset files",
}

var presetInitCmd = &cobra.Command{
	Use:   "init PATH",
	Short: "Write a sample preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return initPreset(args[0], presetPhoto)
	},
}

var presetValidateCmd = &cobra.Command{
	Use:   "validate PATH [PATH...]",
	Short: "Check presets against the schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return validatePresets(args)
	},
}

func init() {
	presetInitCmd.Flags().StringVar(&presetPhoto, "photo", "", "嵌入的照片文件")
	presetCmd.AddCommand(presetInitCmd, presetValidateCmd)
	rootCmd.AddCommand(presetCmd)
}

// samplePreset shows every field of the format.
func samplePreset() *resume.Preset {
	return &resume.Preset{
		Name:      "Max Mustermann",
		Location:  "Berlin",
		Phone:     "+49 30 1234567",
		Email:     "max@example.com",
		GitHub:    "https://github.com/octocat",
		LinkedIn:  "linkedin.com/in/max-mustermann",
		Birthdate: "01.01.1990",
		Skills:    resume.StringList{"Go", "PostgreSQL", "Docker", "Kubernetes"},
		Languages: resume.StringList{"Deutsch - C2", "Englisch - B2"},
		ProjectsText: "Vita\nZweispaltiger Lebenslauf-Generator mit PDF- und PNG-Ausgabe.\n" +
			"https://github.com/ByLCY/vita\n\n" +
			"Ticket-Service\nREST-API mit Warteschlange und Metriken.",
		EducationText:     "B.Sc. Informatik\nTU Berlin, 2010 – 2014\n\nCloud Architect Zertifikat\nOnline, 2021",
		SectionsLeftText:  "[Zertifikate]\n- AWS Solutions Architect\n- CKA",
		SectionsRightText: "[Profil]\n- Backend-Entwickler mit Fokus auf verteilte Systeme.",
	}
}

func initPreset(path, photo string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s 已存在", path)
	}
	p := samplePreset()
	if photo != "" {
		data, err := os.ReadFile(photo)
		if err != nil {
			return fmt.Errorf("读取照片失败: %w", err)
		}
		p.SetPhoto(data, "", "")
	}
	if err := resume.SavePreset(path, p); err != nil {
		return err
	}
	fmt.Printf("已写入预设：%s\n", path)
	return nil
}

func validatePresets(paths []string) error {
	var failed int
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err == nil {
			err = resume.ValidatePreset(data)
		}
		if err != nil {
			failed++
			var ve *resume.ValidationError
			if errors.As(err, &ve) {
				fmt.Printf("✗ %s\n", path)
				for _, fe := range ve.Errors {
					fmt.Printf("    %s: %s\n", fe.Field, fe.Message)
				}
				continue
			}
			fmt.Printf("✗ %s: %v\n", path, err)
			continue
		}
		fmt.Printf("✓ %s\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d presets invalid", failed, len(paths))
	}
	return nil
}
