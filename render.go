package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ByLCY/vita/layout"
	"github.com/ByLCY/vita/resume"
)

var (
	renderOut   string
	renderDebug string
)

var renderCmd = &cobra.Command{
	Use:   "render PRESET.json [PRESET.json...]",
	Short: "Render presets to PDF (or PNG with --engine preview)",
	Long: `Render one or more preset files. With a single preset --out may name the output
file; otherwise --out is a directory and each result is named after its preset.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "output", "输出文件或目录")
	renderCmd.Flags().StringVar(&renderDebug, "debug", "", "布局调试 JSON 输出路径（多个输入时为目录）")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator(settings)
	if err != nil {
		return err
	}
	jobs, err := planJobs(args, renderOut, renderDebug, outputExt(settings.Engine))
	if err != nil {
		return err
	}
	if err := renderAll(cmd.Context(), gen, jobs); err != nil {
		return err
	}
	for _, j := range jobs {
		fmt.Printf("已生成：%s\n", j.out)
	}
	return nil
}

type renderJob struct {
	preset string
	out    string
	debug  string
}

// planJobs resolves output and debug paths for every preset.
func planJobs(presets []string, out, debug, ext string) ([]renderJob, error) {
	single := len(presets) == 1
	jobs := make([]renderJob, 0, len(presets))
	seen := map[string]string{}
	for _, p := range presets {
		base := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		j := renderJob{preset: p, out: filepath.Join(out, base+ext)}
		if single && filepath.Ext(out) != "" {
			j.out = out
		}
		if debug != "" {
			j.debug = filepath.Join(debug, base+".layout.json")
			if single && filepath.Ext(debug) != "" {
				j.debug = debug
			}
		}
		if prev, ok := seen[j.out]; ok {
			return nil, fmt.Errorf("%s 与 %s 会写入同一个文件 %s", prev, p, j.out)
		}
		seen[j.out] = p
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// renderAll renders jobs in parallel, bounded by GOMAXPROCS. The first failure
// cancels the rest.
func renderAll(ctx context.Context, gen *resume.Generator, jobs []renderJob) error {
	if ctx == nil {
		ctx = context.Background()
	}
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, j := range jobs {
		g.Go(func() error {
			if err := renderOne(gCtx, gen, j); err != nil {
				return fmt.Errorf("%s: %w", j.preset, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func renderOne(ctx context.Context, gen *resume.Generator, j renderJob) error {
	preset, err := resume.LoadPreset(j.preset)
	if err != nil {
		return err
	}
	out, err := gen.Generate(ctx, preset.Form().Input())
	if err != nil {
		return err
	}
	if j.debug != "" {
		if err := writeDebug(out.Result, j.debug); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(j.out), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(j.out, out.Data, 0o644); err != nil {
		return fmt.Errorf("写入文件失败: %w", err)
	}
	return nil
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
