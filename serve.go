package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ByLCY/vita/config"
	"github.com/ByLCY/vita/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server exposing POST /generate-form, POST /generate-preset and GET /health.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", config.DefaultAddr, "监听地址 (VITA_ADDR)")
	serveCmd.Flags().Int("max-upload-mb", config.DefaultMaxUploadMB, "表单上传大小上限 MB (VITA_MAX_UPLOAD_MB)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	gen, err := newGenerator(settings)
	if err != nil {
		return err
	}
	srv, err := server.New(server.Config{
		Addr:           settings.Addr,
		MaxUploadBytes: settings.MaxUploadBytes(),
		Generator:      gen,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start(cmd.Context())
}
