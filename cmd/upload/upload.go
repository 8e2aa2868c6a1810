package upload

import (
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/soley/admin-cli/internal/app"
	"github.com/soley/admin-cli/internal/config"
	"github.com/soley/admin-cli/internal/format"
	"github.com/soley/admin-cli/internal/upload"
)

// UploadCmd represents the upload command
var UploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Image upload commands",
	Long: `Image upload commands.

"serve" runs the local upload endpoint; "file" sends an image to it and
prints the URL to use in create and update commands.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local image-upload endpoint",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Upload an image",
	Long:  "Upload an image (at most 5MB) to the configured upload endpoint and print its URL.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func runServe(cmd *cobra.Command, args []string) error {
	a := app.From(cmd)
	cfg := a.Config.Upload

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Addr
	}

	storage, err := upload.NewDiskStorage(cfg.StorageDir, cfg.PublicBaseURL)
	if err != nil {
		return err
	}

	mode := gin.ReleaseMode
	if config.IsDebug() {
		mode = gin.DebugMode
	}

	srv, err := upload.New(upload.Config{
		Logger:        a.Logger.With("component", "upload"),
		Addr:          addr,
		Mode:          mode,
		Storage:       storage,
		MaxBytes:      cfg.MaxBytes,
		RatePerMinute: cfg.RatePerMinute,
		StaticPath:    staticPath(cfg.PublicBaseURL),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	format.PrintInfo("Serving uploads on %s, files in %s", addr, cfg.StorageDir)
	return srv.Run(ctx)
}

// staticPath is the path part of the public base URL, e.g. "/uploads".
func staticPath(base string) string {
	u, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return strings.TrimRight(u.Path, "/")
}

func runFile(cmd *cobra.Command, args []string) error {
	a := app.From(cmd)

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	contentType, _ := cmd.Flags().GetString("content-type")
	res, err := a.Client.UploadImage(cmd.Context(), filepath.Base(args[0]), contentType, f)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	if format.IsStructured() {
		return format.Print(res)
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.URL)
	return nil
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config upload.addr)")
	fileCmd.Flags().String("content-type", "", "content type (sniffed from the data when empty)")

	UploadCmd.AddCommand(serveCmd)
	UploadCmd.AddCommand(fileCmd)
}
