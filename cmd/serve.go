package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"protodeck/internal/log"
	"protodeck/internal/pipeline"
	"protodeck/internal/scan"
)

var servePort int

// serve previews the gallery locally. It renders the page, serves the build
// directory, and re-renders when the prototypes directory changes. Nothing
// is deployed.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the gallery locally and re-render on changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if _, err := os.Stat(cfg.Root); err != nil {
			return fmt.Errorf("prototypes directory %s does not exist", cfg.Root)
		}

		p := pipeline.New(cfg)
		rebuild := func() {
			if _, err := p.WriteGallery(scan.Scan(cfg.Root)); err != nil {
				log.Errorf("render failed: %v\n", err)
			}
		}
		rebuild()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer watcher.Close()

		go func() {
			var timer *time.Timer
			const debounce = 500 * time.Millisecond

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return
					}
					if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
						!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
						continue
					}
					if event.Has(fsnotify.Create) {
						if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
							if err := watcher.Add(event.Name); err != nil {
								log.Warnf("cannot watch %s: %v\n", event.Name, err)
							}
						}
					}
					if timer != nil {
						timer.Stop()
					}
					timer = time.AfterFunc(debounce, func() {
						log.Println("change detected, re-rendering gallery")
						rebuild()
					})
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					log.Warnf("watcher error: %v\n", err)
				}
			}
		}()

		err = filepath.WalkDir(cfg.Root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				log.Warnf("walking %s: %v\n", path, err)
				return nil
			}
			if d.IsDir() {
				if werr := watcher.Add(path); werr != nil {
					log.Warnf("cannot watch %s: %v\n", path, werr)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		addr := fmt.Sprintf(":%d", servePort)
		log.Printf("serving gallery from %s on http://localhost%s\n", cfg.BuildDir, addr)

		fs := http.FileServer(http.Dir(cfg.BuildDir))
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			fs.ServeHTTP(w, r)
		})
		return http.ListenAndServe(addr, nil)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 4321, "port to serve the gallery on")
	rootCmd.AddCommand(serveCmd)
}
