// Upload harness: pushes local files through the document workflow, either
// against a real backend or with a simulated uploader.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/frontdash/partner-desktop/core/config"
	"github.com/frontdash/partner-desktop/core/frontdash"
	"github.com/frontdash/partner-desktop/core/httpclient"
	"github.com/frontdash/partner-desktop/core/logging"
	"github.com/frontdash/partner-desktop/core/upload"
)

func main() {
	cfgPath := flag.String("config", "", "config file path")
	category := flag.String("category", "license", "document category")
	simulate := flag.Bool("simulate", false, "use a simulated uploader instead of the backend")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: uploadtest [-simulate] [-category name] file...")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewDevelopment()
	defer logger.Sync()

	var uploader upload.Uploader
	if *simulate {
		uploader = upload.UploaderFunc(func(ctx context.Context, filename, category string, content io.Reader) (string, error) {
			if _, err := io.Copy(io.Discard, content); err != nil {
				return "", err
			}
			time.Sleep(300 * time.Millisecond)
			return "https://cdn.frontdash.example.com/uploads/" + filename, nil
		})
	} else {
		httpCli := httpclient.NewClient(
			httpclient.WithTimeout(cfg.RequestTimeout.Std()),
			httpclient.WithLogger(logger),
		)
		api := frontdash.NewClient(
			frontdash.WithBaseURL(cfg.BaseURL),
			frontdash.WithHTTPClient(httpCli),
			frontdash.WithLogger(logger),
		)
		uploader = upload.UploaderFunc(api.UploadImage)
	}

	manager := upload.NewManager(uploader,
		upload.WithRules(upload.Rules{
			MaxSize:           cfg.MaxUploadBytes,
			AllowedExtensions: cfg.AllowedExtensions,
		}),
		upload.WithMaxConcurrent(cfg.MaxUploadParallel),
	)
	manager.OnProgress(func(doc *upload.Document) {
		fmt.Printf("%-30s %-10s %3d%%  %s\n", doc.Name, doc.Status, doc.Progress, doc.URL)
	})

	ctx := context.Background()
	for _, path := range flag.Args() {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open %s: %v\n", path, err)
			continue
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			fmt.Fprintf(os.Stderr, "stat %s: %v\n", path, err)
			continue
		}
		if _, err := manager.Add(ctx, filepath.Base(path), *category, info.Size(), f); err != nil {
			f.Close()
			fmt.Fprintf(os.Stderr, "rejected %s: %v\n", path, err)
		}
	}

	manager.Wait()
	fmt.Println("uploaded urls:")
	for _, url := range manager.URLs() {
		fmt.Println("  " + url)
	}
}
