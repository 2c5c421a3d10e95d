package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/linknest/linknest/internal/bookmarks"
	"github.com/linknest/linknest/internal/exporter"
	"github.com/linknest/linknest/internal/importer"
	"github.com/linknest/linknest/internal/model"
	"github.com/linknest/linknest/internal/notify"
	"github.com/linknest/linknest/internal/picker"
	"github.com/linknest/linknest/internal/search"
	"github.com/linknest/linknest/internal/storage"
	"github.com/linknest/linknest/internal/sweeper"
	"github.com/linknest/linknest/internal/tags"
	"github.com/linknest/linknest/internal/tui"
	"github.com/linknest/linknest/internal/view"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "add":
			runAdd(os.Args[2:])
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: linknest import <file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		case "export":
			// Export with optional path
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		case "sweep":
			runSweep()
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `linknest - tagged bookmark manager

Usage:
  linknest                    Open interactive TUI
  linknest add [url] [title]  Open the creation window
  linknest <query>            Quick search → select → open
  linknest import <file>      Import bookmarks from HTML
  linknest export [path]      Export bookmarks to HTML
  linknest sweep              Remove orphaned tag records
  linknest help               Show this help

TUI Keybindings:
  Navigation:
    j/k         Move down/up
    gg/G        Jump to top/bottom

  Actions:
    Enter       Open bookmark in browser
    y           Copy URL to clipboard
    /           Search by title or tag

  Editing:
    e           Edit title, URL, tag
    d           Delete
    Tab         Next field (edit form)
    Ctrl+p      Cycle preset tag (edit form)

  Other:
    ?           Show help overlay
    q           Quit

Preset tags: reading, videos, work, school, personal
Custom tags may be at most 3 words.

Data Storage:
  ~/.config/linknest/linknest.db
`
	fmt.Print(help)
}

// env opens the database and loads configuration. Every subcommand
// starts here.
type env struct {
	cfg      *storage.Config
	db       *sql.DB
	svc      *bookmarks.SQLiteService
	tagStore *tags.SQLiteStore
	log      zerolog.Logger
}

func setup() (*env, error) {
	configPath, err := storage.DefaultConfigFilePath()
	if err != nil {
		return nil, fmt.Errorf("config path: %w", err)
	}
	cfg, err := storage.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dbPath, err := storage.DefaultDBPath()
	if err != nil {
		return nil, fmt.Errorf("db path: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	return &env{
		cfg:      cfg,
		db:       db,
		svc:      bookmarks.NewSQLiteService(db),
		tagStore: tags.NewSQLiteStore(db),
		log:      newLogger(dbPath),
	}, nil
}

func (e *env) close() {
	_ = e.db.Close()
}

// newLogger writes structured logs next to the database. The TUI owns
// the terminal, so logs never go to stderr.
func newLogger(dbPath string) zerolog.Logger {
	logPath := filepath.Join(filepath.Dir(dbPath), "linknest.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(file).With().Timestamp().Logger()
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// runTUI runs the full interactive TUI.
func runTUI() {
	e, err := setup()
	if err != nil {
		fatal("Error: %v", err)
	}
	defer e.close()

	store := view.NewStore(e.svc, e.tagStore, e.cfg.Locale)
	ctrl := view.NewController(store)
	editor := view.NewEditor(ctrl, e.svc, e.tagStore)
	events := e.svc.Subscribe()
	defer e.svc.Unsubscribe(events)

	app := tui.NewApp(tui.AppParams{
		Controller: ctrl,
		Editor:     editor,
		Events:     events,
		Logger:     &e.log,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	// Creation windows report new bookmarks over the notify socket.
	listener, err := notify.Listen(e.cfg.NotifyAddr, func(msg notify.Message) {
		if msg.Type == notify.TypeBookmarkAdded {
			p.Send(tui.BookmarkAddedMsg{ID: msg.BookmarkID})
		}
	}, e.log)
	if err != nil {
		e.log.Warn().Err(err).Str("addr", e.cfg.NotifyAddr).Msg("notify listener unavailable")
	} else {
		defer listener.Close()
	}

	if _, err := p.Run(); err != nil {
		fatal("Error running app: %v", err)
	}
}

// runQuickSearch performs a fuzzy search and opens the selected bookmark.
func runQuickSearch(query string) {
	e, err := setup()
	if err != nil {
		fatal("Error: %v", err)
	}
	defer e.close()

	store := view.NewStore(e.svc, e.tagStore, e.cfg.Locale)
	if err := store.Refresh(context.Background()); err != nil {
		fatal("Error loading bookmarks: %v", err)
	}

	results := search.FuzzySearchEntries(store.Entries(), query)
	if len(results) == 0 {
		fmt.Printf("No bookmarks found for '%s'\n", query)
		os.Exit(0)
	}

	var selected *model.JoinedEntry

	if len(results) == 1 {
		// Single result - select it directly
		selected = &results[0].Entry
		fmt.Printf("Opening: %s\n", selected.Title)
	} else {
		// Multiple results - show picker
		p := picker.New(results, query)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			fatal("Error running picker: %v", err)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			os.Exit(0)
		}
		selected = finalPicker.SelectedEntry()
	}

	if selected == nil {
		os.Exit(0)
	}

	openURL(selected.URL)
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}

// runImport handles the import subcommand.
func runImport(filePath string) {
	e, err := setup()
	if err != nil {
		fatal("Error: %v", err)
	}
	defer e.close()

	file, err := os.Open(filePath)
	if err != nil {
		fatal("Error opening file: %v", err)
	}
	defer file.Close()

	forest, err := importer.ParseHTMLBookmarks(file)
	if err != nil {
		fatal("Error parsing HTML: %v", err)
	}

	ctx := context.Background()

	// Existing URLs are skipped as duplicates.
	existingTree, err := e.svc.GetTree(ctx)
	if err != nil {
		fatal("Error loading bookmarks: %v", err)
	}
	existing := make(map[string]bool)
	for _, entry := range model.Flatten(existingTree) {
		existing[entry.URL] = true
	}

	ins := &forestInserter{svc: e.svc, existing: existing}
	if err := ins.insert(ctx, forest, nil); err != nil {
		fatal("Error importing: %v", err)
	}

	fmt.Printf("Imported %d bookmarks, %d folders", ins.added, ins.folders)
	if ins.skipped > 0 {
		fmt.Printf(" (%d duplicates skipped)", ins.skipped)
	}
	fmt.Println()
}

// forestInserter recreates a parsed bookmark tree through the service,
// preserving nesting and skipping URLs that already exist.
type forestInserter struct {
	svc      *bookmarks.SQLiteService
	existing map[string]bool

	folders int
	added   int
	skipped int
}

func (f *forestInserter) insert(ctx context.Context, nodes []model.Node, parentID *string) error {
	for _, node := range nodes {
		if node.IsFolder() {
			created, err := f.svc.CreateFolder(ctx, node.Title, parentID)
			if err != nil {
				return err
			}
			f.folders++
			if err := f.insert(ctx, node.Children, &created.ID); err != nil {
				return err
			}
			continue
		}

		if f.existing[node.URL] {
			f.skipped++
			continue
		}

		if _, err := f.svc.Create(ctx, bookmarks.CreateParams{
			Title:    node.Title,
			URL:      node.URL,
			ParentID: parentID,
		}); err != nil {
			return err
		}
		f.existing[node.URL] = true
		f.added++
	}
	return nil
}

// runExport handles the export subcommand.
func runExport(outputPath string) {
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fatal("Error getting default export path: %v", err)
		}
	}

	e, err := setup()
	if err != nil {
		fatal("Error: %v", err)
	}
	defer e.close()

	forest, err := e.svc.GetTree(context.Background())
	if err != nil {
		fatal("Error loading bookmarks: %v", err)
	}

	html := exporter.ExportHTML(forest)
	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		fatal("Error writing file: %v", err)
	}

	fmt.Printf("Exported %d bookmarks to %s\n", len(model.Flatten(forest)), outputPath)
}

// runSweep removes tag records whose bookmark no longer exists.
func runSweep() {
	e, err := setup()
	if err != nil {
		fatal("Error: %v", err)
	}
	defer e.close()

	result, err := sweeper.Sweep(context.Background(), e.svc, e.tagStore)
	if err != nil {
		fatal("Error sweeping: %v", err)
	}
	fmt.Println(result.Summary())
}
