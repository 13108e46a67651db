package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"
)

// debugMode enables debugLog output
var debugMode bool

func debugLog(format string, args ...interface{}) {
	if debugMode {
		log.Printf("Debug: "+format, args...)
	}
}

type targetKind int

const (
	targetDirectory targetKind = iota
	targetFile
	targetArchive
)

// classifyTarget decides what the command line argument names. The image
// check runs on the raw argument without case folding, so "photo.JPG" is
// treated as a directory name.
func classifyTarget(args []string) (string, targetKind) {
	if len(args) == 0 {
		return ".", targetDirectory
	}
	path := args[0]
	switch {
	case substringFilter{}.Supported(path):
		return path, targetFile
	case isArchiveExt(path):
		return path, targetArchive
	default:
		return path, targetDirectory
	}
}

// loadTarget builds the picture store for the command line target.
func loadTarget(loader *Loader, target string, kind targetKind) (*PictureStore, error) {
	if kind == targetFile {
		return loader.LoadFile(target)
	}

	var (
		store  *PictureStore
		report LoadReport
		err    error
	)
	if kind == targetArchive {
		store, report, err = loader.LoadArchive(target)
	} else {
		store, report, err = loader.LoadDirectory(target)
	}
	if len(report.Skipped) > 0 {
		log.Printf("Warning: %s: %d of %d entries skipped", target, len(report.Skipped), report.Scanned)
		for _, s := range report.Skipped {
			debugLog("skipped %s: %v", s.Path, s.Reason)
		}
	}
	return store, err
}

// fatalMessage turns a load error into the line printed before exiting.
func fatalMessage(target string, err error) string {
	switch {
	case errors.Is(err, ErrDirectoryNotFound):
		return fmt.Sprintf("Directory '%s' is not found.", target)
	case errors.Is(err, ErrNoSupportedImages):
		return fmt.Sprintf("Directory '%s' hasn't supported images.", target)
	case errors.Is(err, ErrDecodeFailed):
		return fmt.Sprintf("Picture '%s' could not be loaded: %v", target, err)
	case errors.Is(err, ErrDirectoryAccess):
		return fmt.Sprintf("Directory access error: %v", err)
	default:
		return err.Error()
	}
}

func main() {
	configPath := flag.String("config", getConfigPath(), "path to the JSON config file")
	strict := flag.Bool("strict", false, "only accept files whose extension is a supported type")
	sortName := flag.String("sort", "", "order of scanned entries: "+strings.Join(sortMethodKeys(), ", "))
	flag.BoolVar(&debugMode, "debug", false, "print debug diagnostics")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [directory | picture | archive]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetOutput(os.Stdout)
	log.SetFlags(0)

	config := loadConfigFromPath(*configPath)
	if *strict {
		config.Config.StrictExtensions = true
	}
	if *sortName != "" {
		method, ok := parseSortMethod(*sortName)
		if !ok {
			log.Fatalf("Unknown sort method '%s'", *sortName)
		}
		config.Config.SortMethod = method
	}

	target, kind := classifyTarget(flag.Args())
	loader := NewLoader(afero.NewOsFs(),
		newFormatFilter(config.Config.StrictExtensions),
		GetSortStrategy(config.Config.SortMethod))

	store, err := loadTarget(loader, target, kind)
	if err != nil {
		log.Fatal(fatalMessage(target, err))
	}
	debugLog("Loaded %d pictures from %s", store.Len(), target)

	display := NewDisplay(store, primaryScreenBounds(), ebitenWindow{}, config.Config.TextureCacheSize)
	viewer := NewViewer(store, display, config)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := viewer.Start(); err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
